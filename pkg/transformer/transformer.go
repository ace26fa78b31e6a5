package transformer

import (
	"github.com/op/go-logging"

	"github.com/Cloud-Pie/EFT/internal/util"
	"github.com/Cloud-Pie/EFT/types"
)

var log = logging.MustGetLogger("eft")

//Transform removes the emission interval from every workload emission record
//and sets a freshly drawn center emission factor on it.
//Records are visited in document order and changed in place.
func Transform(doc *types.Document, rng Source) types.Summary {
	summary := types.Summary{Partners: len(doc.Partners)}
	for i, partner := range doc.Partners {
		summary.DataCenters += len(partner.DataCenters)
		for _, center := range partner.DataCenters {
			for _, record := range center.Emissions {
				if record.Delete(util.KEY_EMISSION_INTERVAL) {
					summary.IntervalsRemoved++
				}
				factor := EmissionFactor(rng)
				record.Set(util.KEY_CENTER_EMISSION_FACTOR, factor)

				if summary.Records == 0 || factor < summary.MinFactor {
					summary.MinFactor = factor
				}
				if factor > summary.MaxFactor {
					summary.MaxFactor = factor
				}
				summary.Records++
			}
		}
		log.Debugf("Partner %d: %d data centers transformed", i, len(partner.DataCenters))
	}
	return summary
}
