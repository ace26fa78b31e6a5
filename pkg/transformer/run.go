package transformer

import (
	"github.com/spf13/afero"

	"github.com/Cloud-Pie/EFT/types"
)

//Run loads input, transforms every record and writes the result to output.
//Nothing is written when the input cannot be loaded.
func Run(fs afero.Fs, input string, output string, rng Source) (types.Summary, error) {
	log.Infof("Loading %s", input)
	doc, err := Load(fs, input)
	if err != nil {
		return types.Summary{}, err
	}

	summary := Transform(doc, rng)
	log.Infof("Transformed %d records in %d data centers of %d partners",
		summary.Records, summary.DataCenters, summary.Partners)

	if err := Write(fs, output, doc); err != nil {
		return summary, err
	}
	log.Infof("Output written to %s", output)
	return summary, nil
}
