// Package layout decodes a satisfying SAT assignment into a concrete
// platform layout, one platform per origin, plus the auxiliary queries a
// driver typically wants over one: total count, per-definition
// multiplicity, and weighted sum. Decoding does not check platforms for
// overlap or bounds; pkg/validate does that.
package layout
