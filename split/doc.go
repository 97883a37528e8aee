// Package split partitions masked vertices into train/validation/test sets.
//
// SplitFromMask performs one stratified partition: the masked positions of
// every label value are shuffled and cut into contiguous chunks whose sizes
// follow the requested fractions. Every masked position lands in exactly one
// set; positions outside the mask are never assigned.
//
// StratifiedSplit repeats SplitFromMask over the whole vertex set for several
// seeds. Each seed owns an independent *rand.Rand, so seeds are computed in
// parallel and reproduce bit-for-bit regardless of scheduling.
//
// SampleFromMask and SampleUniformly draw fixed-size samples instead of
// fractions and fail with ErrSamplingExhausted before drawing anything when
// the mask is too small.
//
// No function reads global random state: every randomized call takes its
// source explicitly.
package split
