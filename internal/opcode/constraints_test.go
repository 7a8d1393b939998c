package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ssaflow/internal/types"
)

func TestFixedValueArguments(t *testing.T) {
	assert.Equal(t, 0, ConstraintsFor(Iconst).FixedValueArguments())
	assert.Equal(t, 0, ConstraintsFor(Trap).FixedValueArguments())
	assert.Equal(t, 1, ConstraintsFor(Copy).FixedValueArguments())
	assert.Equal(t, 1, ConstraintsFor(Spill).FixedValueArguments())
	assert.Equal(t, 1, ConstraintsFor(Fill).FixedValueArguments())
	assert.Equal(t, 2, ConstraintsFor(Iadd).FixedValueArguments())
	assert.Equal(t, 2, ConstraintsFor(IaddCout).FixedValueArguments())
	assert.Equal(t, 2, ConstraintsFor(Icmp).FixedValueArguments())
	assert.Equal(t, 0, ConstraintsFor(Call).FixedValueArguments())
	assert.Equal(t, 1, ConstraintsFor(CallIndirect).FixedValueArguments())
	assert.Equal(t, 0, ConstraintsFor(Return).FixedValueArguments())
}

func TestFixedResults(t *testing.T) {
	assert.Equal(t, 0, ConstraintsFor(Trap).FixedResults())
	assert.Equal(t, 0, ConstraintsFor(Return).FixedResults())
	assert.Equal(t, 0, ConstraintsFor(Call).FixedResults())
	assert.Equal(t, 0, ConstraintsFor(CallIndirect).FixedResults())
	assert.Equal(t, 2, ConstraintsFor(IaddCout).FixedResults())
	assert.Equal(t, 1, ConstraintsFor(Iadd).FixedResults())
	assert.Equal(t, 1, ConstraintsFor(Iconst).FixedResults())
}

func TestResultType(t *testing.T) {
	assert.Equal(t, types.I32, ConstraintsFor(Iadd).ResultType(0, types.I32))
	assert.Equal(t, types.I64, ConstraintsFor(Iconst).ResultType(0, types.I64))
	assert.Equal(t, types.B1, ConstraintsFor(Icmp).ResultType(0, types.I32))
	assert.Equal(t, types.I32, ConstraintsFor(IaddCout).ResultType(0, types.I32))
	assert.Equal(t, types.B1, ConstraintsFor(IaddCout).ResultType(1, types.I32))
}

func TestResultTypePanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		ConstraintsFor(Iadd).ResultType(1, types.I32)
	})
	assert.Panics(t, func() {
		ConstraintsFor(Trap).ResultType(0, types.Void)
	})
}

func TestFixedValueArgumentsPanicsOnUnregisteredOpcode(t *testing.T) {
	assert.Panics(t, func() {
		ConstraintsFor(Opcode(250)).FixedValueArguments()
	})
}
