package picker

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"essaydesk/internal/attachments"
)

// PathGateway answers a pick with a fixed list of paths, as a scripted
// chooser would. Files outside the type filters are skipped; when nothing
// remains the pick counts as cancelled. A file that cannot be read fails
// the pick.
type PathGateway struct {
	paths     []string
	describer Describer
}

// NewPathGateway creates a gateway that returns paths in order
func NewPathGateway(paths []string, d Describer) *PathGateway {
	return &PathGateway{paths: append([]string(nil), paths...), describer: d}
}

// Pick implements attachments.Gateway
func (g *PathGateway) Pick(ctx context.Context, req attachments.PickRequest) (attachments.PickResult, error) {
	filter := NewFilter(req.TypeFilters)

	var accepted []string
	for _, p := range g.paths {
		if err := ctx.Err(); err != nil {
			return attachments.PickResult{}, err
		}

		mt, err := Detect(p)
		if err != nil {
			return attachments.PickResult{}, fmt.Errorf("detect %s: %w", p, err)
		}
		if !filter.Accepts(mt) {
			logrus.WithFields(logrus.Fields{"path": p, "type": mt}).Warn("picker: skipping file outside type filters")
			continue
		}

		accepted = append(accepted, p)
		if !req.Multiple {
			break
		}
	}

	items, err := g.describer.DescribeAll(accepted, req.CacheLocally)
	if err != nil {
		return attachments.PickResult{}, err
	}
	return attachments.Picked(items...), nil
}
