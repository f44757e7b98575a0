// Package environment names the deployment a process runs in and parses the
// APP_ENV value into one of Development, Staging or Production.
package environment
