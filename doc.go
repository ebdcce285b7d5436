// Package coomat implements a fixed-capacity sparse-matrix kernel over
// coordinate (COO) triples.
//
// A Matrix stores its non-zero values as an unordered list of
// (row, col, value) entries backed by a slice whose capacity is fixed
// at allocation time. Operations never reallocate: any result that
// would need more entries than the destination can hold fails with
// ErrCapacityExceeded instead of growing the storage.
//
// The package provides:
//
//   - FromDense / ToDense: conversion between a row-major flat buffer
//     and the sparse representation, with near-zero thresholding.
//   - Mul, MulDense, Add, Sub, Copy: destination-passing kernels that
//     merge duplicate coordinates and prune near-zero results.
//   - Transpose, Prune, Scale, Delete: in-place mutations.
//   - Dump / String: a stable human-readable text form.
//
// Entries whose magnitude falls below the epsilon threshold
// (DefaultEpsilon, adjustable per call via WithEpsilon) are treated as
// zero and removed from storage after every operation.
//
// All kernels are single-threaded, deterministic and side-effect free
// beyond the explicit destination argument. Errors are package-level
// sentinels matched with errors.Is; no operation panics on
// user-triggered conditions.
package coomat
