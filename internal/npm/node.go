package npm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/opmodel/stackgen/internal/process"
)

// MinNodeVersion is the oldest Node.js release the generated projects support.
const MinNodeVersion = ">= 16.0.0"

// CheckNode verifies that node is on PATH and satisfies MinNodeVersion.
// It returns the detected version.
func CheckNode(ctx context.Context, runner process.Runner) (*semver.Version, error) {
	res, err := runner.Run(ctx, process.Command{
		Name:  "node",
		Args:  []string{"--version"},
		Quiet: true,
	})
	if err != nil {
		return nil, fmt.Errorf("detecting node version: %w", err)
	}

	raw := strings.TrimSpace(res.Output)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", raw, err)
	}

	c, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}

	if !c.Check(v) {
		return v, fmt.Errorf("node %s does not satisfy %s", v, MinNodeVersion)
	}
	return v, nil
}
