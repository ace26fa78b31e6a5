package transformer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Cloud-Pie/EFT/types"
)

const outputFileMode = 0644

//Load reads and decodes the cloud partners document at path
func Load(fs afero.Fs, path string) (*types.Document, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: \"%s\"", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w \"%s\": %v", ErrRead, path, err)
	}
	doc, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("file \"%s\": %w", path, err)
	}
	return doc, nil
}

//Decode parses a cloud partners document.
//Shape mismatches are returned as *types.ShapeError, anything else wraps ErrParse.
func Decode(data []byte) (*types.Document, error) {
	doc := &types.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		if errors.Is(err, types.ErrShape) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrParse, describeJSONError(err))
	}
	return doc, nil
}

//Encode serializes the document as compact JSON
func Encode(doc *types.Document) ([]byte, error) {
	return json.Marshal(doc)
}

//Write replaces the file at path with the encoded document.
//The data goes to a temporary file in the same directory first and is renamed over path,
//so a failed write never leaves a truncated file behind.
func Write(fs afero.Fs, path string, doc *types.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("%w \"%s\": %v", ErrWrite, path, err)
	}
	if err := writeAtomic(fs, path, data); err != nil {
		return fmt.Errorf("%w \"%s\": %v", ErrWrite, path, err)
	}
	return nil
}

func writeAtomic(fs afero.Fs, path string, data []byte) (err error) {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = fs.Chmod(tmpName, outputFileMode); err != nil {
		return err
	}
	return fs.Rename(tmpName, path)
}
