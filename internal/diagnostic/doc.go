// Package diagnostic collects the errors, warnings and notes produced while
// checking a schema file against a registry, so that every problem in a
// file is reported at once instead of stopping at the first one.
package diagnostic
