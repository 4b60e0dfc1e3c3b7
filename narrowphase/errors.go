// SPDX-License-Identifier: MIT
package narrowphase

import "errors"

// ErrUnknownVariant indicates ReduceMin or ReduceRepIdx was called with a
// Grid whose Variant is not VariantCollide or VariantRepIdx, or whose
// variant-selected auxiliary array is nil (e.g. a zero-value Grid built
// without NewGrid). ReduceRepIdx also returns it for a Grid whose Variant
// is not VariantRepIdx.
var ErrUnknownVariant = errors.New("narrowphase: unknown variant")
