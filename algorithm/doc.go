// File: algorithm/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Parallel slice algorithms built on the fork/join pool: divide and
// conquer splitting with a caller-chosen grain size. The grain is the
// largest number of elements a leaf frame processes sequentially; smaller
// grains expose more parallelism at the cost of more frames.
package algorithm
