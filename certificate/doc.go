// Package certificate evaluates facts about an X.509 server certificate:
// remaining validity against lower levels and expected subject, issuer,
// serial number and signature algorithm.
//
// Obtaining and parsing the certificate is left to the caller; InfoFromX509
// converts a parsed certificate into the Info this package checks.
//
//	levels := check.LowerLevels(certificate.Days(30), certificate.Days(7))
//	coll := certificate.Check(certificate.InfoFromX509(cert), time.Now(), certificate.Config{
//	    Validity: &levels,
//	})
package certificate
