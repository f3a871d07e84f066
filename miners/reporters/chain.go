package reporters

import (
	"github.com/hashicorp/go-multierror"
)

import (
	"github.com/timtadh/gspan/lattice"
	"github.com/timtadh/gspan/miners"
)

// Chain passes every pattern to each of its reporters in order. The first
// failing reporter stops the pattern from reaching the rest.
type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(p *lattice.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes every reporter even when some fail.
func (r *Chain) Close() error {
	var errs *multierror.Error
	for _, rpt := range r.Reporters {
		if err := rpt.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
