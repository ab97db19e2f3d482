package simplify

import (
	"math/big"

	"bvcore/internal/bvnum"
	"bvcore/internal/lit"
	"bvcore/internal/vartable"
)

// Ite builds if cond then thenVar else elseVar, applying
// bv_solver_create_ite's two normalizations: a negated condition is
// flipped to its positive form with the branches swapped, and a
// statically-true condition collapses straight to the then-branch.
func (b *Builder) Ite(bits uint32, cond lit.Lit, thenVar, elseVar vartable.VarID) vartable.VarID {
	thenVar, elseVar = b.root(thenVar), b.root(elseVar)

	if thenVar == elseVar {
		return thenVar
	}
	if cond.Sign() {
		cond = cond.Negate()
		thenVar, elseVar = elseVar, thenVar
	}
	if cond == lit.True {
		return thenVar
	}
	if cond == lit.False {
		return elseVar
	}
	return b.vt.NewITE(bits, cond, thenVar, elseVar)
}

// BitArray builds the bit-vector whose per-bit literals are bits,
// collapsing to a CONST64/CONST variable when every literal is
// statically known, mirroring bv_solver_create_bvarray's all-constant
// fold.
func (b *Builder) BitArray(bits []lit.Lit) vartable.VarID {
	allConst := true
	for _, l := range bits {
		if !l.IsConst() {
			allConst = false
			break
		}
	}
	if !allConst {
		return b.vt.NewBitArray(bits)
	}

	n := uint32(len(bits))
	if n <= 64 {
		var v uint64
		for i, l := range bits {
			if l == lit.True {
				v |= 1 << uint(i)
			}
		}
		return b.vt.NewConst64(n, v)
	}

	v := new(big.Int)
	for i, l := range bits {
		if l == lit.True {
			v.SetBit(v, i, 1)
		}
	}
	return b.newConst(bvnum.FromBigInt(n, v))
}
