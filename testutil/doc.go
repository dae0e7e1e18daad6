// Package testutil provides deterministic helpers for the castor test
// suites: a seeded, resettable random source and fixed-width record
// generators.
package testutil
