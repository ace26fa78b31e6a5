package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"

	"github.com/Cloud-Pie/EFT/internal/util"
)

//ErrShape is wrapped by every ShapeError
var ErrShape = errors.New("unexpected document shape")

//ShapeError reports a JSON path where the cloud partners document
//does not have the expected nested collections
type ShapeError struct {
	Path     string
	Expected string
	Missing  bool
}

func (e *ShapeError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing key \"%s\"", ErrShape, e.Path)
	}
	return fmt.Sprintf("%s: \"%s\" must be %s", ErrShape, e.Path, e.Expected)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

/*Document is the root of the cloud partners file.
It keeps the whole decoded tree, so keys it does not know about are written back as read.*/
type Document struct {
	fields   *orderedmap.OrderedMap
	Partners []*Partner
}

/*Partner is a cloud provider and its data centers*/
type Partner struct {
	fields      *orderedmap.OrderedMap
	DataCenters []*DataCenter
}

/*DataCenter holds the workload dependent emissions of one facility*/
type DataCenter struct {
	fields    *orderedmap.OrderedMap
	Emissions []*EmissionRecord
}

/*EmissionRecord is an open set of keys describing one workload.
Changes are made in place on the document tree.*/
type EmissionRecord struct {
	fields *orderedmap.OrderedMap
}

func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := decodeValue(dec)
	if err != nil {
		return err
	}
	fields, ok := value.(*orderedmap.OrderedMap)
	if !ok {
		return &ShapeError{Path: "$", Expected: "an object"}
	}
	return d.bind(fields)
}

//Decode the next JSON value, objects as ordered maps and numbers as json.Number,
//so passthrough values are written back exactly as read
func decodeValue(dec *json.Decoder) (interface{}, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}
	switch delim {
	case '{':
		object := orderedmap.New()
		for dec.More() {
			keyToken, err := dec.Token()
			if err != nil {
				return nil, err
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			object.Set(keyToken.(string), value)
		}
		_, err = dec.Token()
		return object, err
	case '[':
		items := []interface{}{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		_, err = dec.Token()
		return items, err
	}
	return nil, fmt.Errorf("unexpected %s", delim)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.fields == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.fields)
}

func (p Partner) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields)
}

func (c DataCenter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fields)
}

func (r EmissionRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}

//Bind the typed views to the decoded tree, failing on the first shape mismatch
func (d *Document) bind(fields *orderedmap.OrderedMap) error {
	items, err := collection(fields, "", util.KEY_CLOUD_PARTNERS)
	if err != nil {
		return err
	}
	partners := make([]*Partner, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", util.KEY_CLOUD_PARTNERS, i)
		partnerFields, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			return &ShapeError{Path: path, Expected: "an object"}
		}
		partner := &Partner{fields: partnerFields}
		if err := partner.bind(path); err != nil {
			return err
		}
		partners = append(partners, partner)
	}
	d.fields = fields
	d.Partners = partners
	return nil
}

func (p *Partner) bind(path string) error {
	items, err := collection(p.fields, path, util.KEY_DATA_CENTERS)
	if err != nil {
		return err
	}
	p.DataCenters = make([]*DataCenter, 0, len(items))
	for i, item := range items {
		centerPath := fmt.Sprintf("%s.%s[%d]", path, util.KEY_DATA_CENTERS, i)
		centerFields, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			return &ShapeError{Path: centerPath, Expected: "an object"}
		}
		center := &DataCenter{fields: centerFields}
		if err := center.bind(centerPath); err != nil {
			return err
		}
		p.DataCenters = append(p.DataCenters, center)
	}
	return nil
}

func (c *DataCenter) bind(path string) error {
	items, err := collection(c.fields, path, util.KEY_WORKLOAD_EMISSIONS)
	if err != nil {
		return err
	}
	c.Emissions = make([]*EmissionRecord, 0, len(items))
	for i, item := range items {
		recordFields, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			return &ShapeError{
				Path:     fmt.Sprintf("%s.%s[%d]", path, util.KEY_WORKLOAD_EMISSIONS, i),
				Expected: "an object",
			}
		}
		c.Emissions = append(c.Emissions, &EmissionRecord{fields: recordFields})
	}
	return nil
}

func collection(fields *orderedmap.OrderedMap, parent string, key string) ([]interface{}, error) {
	path := key
	if parent != "" {
		path = parent + "." + key
	}
	value, found := fields.Get(key)
	if !found {
		return nil, &ShapeError{Path: path, Missing: true}
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, &ShapeError{Path: path, Expected: "an array"}
	}
	return items, nil
}

//Get returns the value stored under key
func (r *EmissionRecord) Get(key string) (interface{}, bool) {
	return r.fields.Get(key)
}

//Set stores value under key. A new key goes after the existing ones,
//an existing key keeps its position.
func (r *EmissionRecord) Set(key string, value interface{}) {
	r.fields.Set(key, value)
}

//Delete removes key and reports whether it was present
func (r *EmissionRecord) Delete(key string) bool {
	if _, found := r.fields.Get(key); !found {
		return false
	}
	r.fields.Delete(key)
	return true
}
