package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mouse-blink/litsplice/internal/domain"
	domainmocks "github.com/mouse-blink/litsplice/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_UsesCheck(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Targets) == 1 && args.Targets[0].EndMarker == "// END"
	})).Return(nil)

	cmd.SetArgs([]string{"check", "--end-marker", "// END"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
	mockWorkflow.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestCheckCmd_Stale(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.Anything).
		Return(fmt.Errorf("1 of 1 targets need regenerating: %w", domain.ErrStale))

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStale)
}
