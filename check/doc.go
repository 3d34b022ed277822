// Package check provides the level-based threshold engine behind monitoring
// plugins.
//
// A LevelsChecker holds an optional warning bound and an optional critical bound
// together with a comparison Direction. Evaluating a measured value yields a
// CheckResult: a State, the rendered Output and, when levels are configured, a
// Metric suitable for performance data. Results of any value type are folded
// into a Collection, whose State is the worst of its entries.
//
// # Core Concepts
//
// Values implement Measurable: they are totally ordered and convert to float64
// for metric emission. Real, Duration, Percent, Count and Bytes are provided.
//
// Output is tagged Notice or Summary. Summary text always appears in the
// headline; Notice text only appears there when the result is not OK, and is
// otherwise kept for the detail lines.
//
// # Basic Usage
//
//	levels := check.UpperLevels(check.Duration(time.Second), check.Duration(2*time.Second))
//	args, err := check.NewLevelsCheckerArgs("overall_response_time", "s")
//	if err != nil {
//	    return err
//	}
//
//	result := levels.Check(check.Duration(1500*time.Millisecond),
//	    check.NewNotice("Response time: 1500 ms"), args)
//
//	coll := check.NewCollection(result)
//	fmt.Println(coll) // WARNING - overall_response_time: 1.5s (warn/crit at 1s/2s) (!) | ...
//
// Construction validates eagerly: units, labels and bound ordering are checked
// when the checker or its arguments are built, so evaluation itself never fails.
//
// # Concurrency
//
// Every type in this package is an immutable value. Checkers, results and
// collections may be shared between goroutines without synchronization.
package check
