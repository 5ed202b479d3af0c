package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/state"
)

func TestSelectVariableValue_LocalEdit(t *testing.T) {
	c := testConsole()
	c.State.Variables.Dispatch(state.SetAll[model.Variable]{Status: state.Done, Entities: []model.Variable{
		{ID: "v1", Name: "host", Arguments: model.VariableArguments{Type: "constant", Values: []string{"a", "b"}}},
	}})

	c.SelectVariableValue("v1", "b")

	selected := c.State.Variables.State().ByID["v1"]
	require.Equal(t, []string{"b"}, selected.Selected)
	assert.Equal(t, "constant", selected.Arguments.Type, "edit must not clobber other fields")
	assert.Empty(t, c.Notify.Active(), "local selection publishes no notification")
}

func TestSelectVariableValue_UnknownVariableIsNoop(t *testing.T) {
	c := testConsole()
	c.SelectVariableValue("never-fetched", "x")
	assert.Equal(t, 0, c.State.Variables.State().Len())
}
