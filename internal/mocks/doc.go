// Package mocks provides shared test doubles for the stores and update
// services.
//
// The in-memory stores select rows with the same filters the PostgreSQL
// stores translate to SQL, so cascade tests observe real filtering. The
// update services record every call and, by default, persist the patch to a
// backing store. All doubles are safe for concurrent use.
//
// Usage:
//
//	candidates := mocks.NewJobCandidateStore(c1, c2)
//	updater := mocks.NewJobCandidateService(candidates)
//	updater.FailOn[c2.ID] = errors.New("boom")
package mocks
