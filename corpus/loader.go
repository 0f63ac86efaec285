package corpus

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/doccat/doccat/errors"
)

// FromCSV reads documents from CSV records with id, text and label columns.
// A record without a label is rejected; empty text is allowed, it simply
// tokenizes to nothing.
func FromCSV(r io.Reader) (Corpus, error) {
	var docs Corpus
	if err := gocsv.Unmarshal(r, &docs); err != nil {
		return nil, errors.Wrapf(err, "reading corpus csv")
	}
	if len(docs) == 0 {
		return nil, errors.Errorf("corpus csv has no records")
	}
	for i, doc := range docs {
		if doc.Label == "" {
			return nil, errors.Errorf("corpus csv record %d (id %q) has no label", i, doc.ID)
		}
	}
	return docs, nil
}

// FromCSVFile reads a corpus CSV from path.
func FromCSVFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening corpus csv")
	}
	defer f.Close()
	return FromCSV(f)
}

// FromDir loads a directory-per-label corpus: every subdirectory of root
// names a label and every file inside it is one document. File contents are
// standardized to utf8 before they enter the pipeline.
func FromDir(root string) (Corpus, error) {
	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading corpus dir")
	}

	var docs Corpus
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()
		files, err := ioutil.ReadDir(filepath.Join(root, label))
		if err != nil {
			return nil, errors.Wrapf(err, "reading class dir %s", label)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(root, label, f.Name())
			raw, err := ioutil.ReadFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", path)
			}
			content, err := StandardizeEncoding(string(raw))
			if err != nil {
				return nil, errors.Wrapf(err, "standardizing %s", path)
			}
			docs = append(docs, Document{
				ID:    filepath.Join(label, f.Name()),
				Text:  content,
				Label: label,
			})
		}
	}
	if len(docs) == 0 {
		return nil, errors.Errorf("no documents under %s", root)
	}
	return docs, nil
}
