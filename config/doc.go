// Package config loads check levels from a YAML file.
//
// Environment references of the form ${VAR} are expanded before decoding
// and must be set; write $$ for a literal dollar sign.
//
//	response_time:
//	  warn: 0.5
//	  crit: 1
//	certificate:
//	  validity: {warn: 30, crit: 7}
//	  issuer: R11
//	targets: ["example.com:443"]
//	dimensions:
//	  - name: load
//	    label: load1
//	    direction: upper
//	    warn: 4
//	    crit: 8
//	observe:
//	  service_name: toolcheck
//	  logging: {enabled: true, level: "${LOG_LEVEL}"}
package config
