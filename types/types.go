package types

import (
	"time"

	"github.com/cnf/structhash"
	"gopkg.in/mgo.v2/bson"
)

/*Summary of one transformation pass over a document*/
type Summary struct {
	Partners         int `json:"partners" bson:"partners"`
	DataCenters      int `json:"data_centers" bson:"data_centers"`
	Records          int `json:"records" bson:"records"`
	IntervalsRemoved int `json:"intervals_removed" bson:"intervals_removed"`
	MinFactor        int `json:"min_factor" bson:"min_factor"`
	MaxFactor        int `json:"max_factor" bson:"max_factor"`
}

/*Shape of the transformed document, without the random part of the summary*/
type Shape struct {
	Partners    int `hash:"name:partners"`
	DataCenters int `hash:"name:data_centers"`
	Records     int `hash:"name:records"`
}

func (s Summary) Shape() Shape {
	return Shape{
		Partners:    s.Partners,
		DataCenters: s.DataCenters,
		Records:     s.Records,
	}
}

//Run is an entry of the transformation history
type Run struct {
	ID          bson.ObjectId `bson:"_id" json:"id"`
	Fingerprint string        `json:"fingerprint" bson:"fingerprint"`
	InputFile   string        `json:"input_file" bson:"input_file"`
	OutputFile  string        `json:"output_file" bson:"output_file"`
	Seed        int64         `json:"seed" bson:"seed"`
	Summary     Summary       `json:"summary" bson:"summary"`
	StartTime   time.Time     `json:"start_time" bson:"start_time"`
	FinishTime  time.Time     `json:"finish_time" bson:"finish_time"`
}

//Create a history entry. Runs over documents with the same shape share the fingerprint.
func NewRun(inputFile string, outputFile string, seed int64, summary Summary, start time.Time, finish time.Time) (Run, error) {
	fingerprint, err := structhash.Hash(summary.Shape(), 1)
	if err != nil {
		return Run{}, err
	}
	return Run{
		ID:          bson.NewObjectId(),
		Fingerprint: fingerprint,
		InputFile:   inputFile,
		OutputFile:  outputFile,
		Seed:        seed,
		Summary:     summary,
		StartTime:   start,
		FinishTime:  finish,
	}, nil
}
