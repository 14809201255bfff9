package youtube

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sort"
)

// Entry is one feed item from the snapshot, the source URL carried as "url"
type Entry map[string]interface{}

// Load reads the snapshot file maintained by the external collector and
// flattens the url -> fields mapping into a list, each entry carrying its
// URL as a field. Entries are sorted by URL so the response is stable; the
// source object has no meaningful order. A missing file yields an empty list.
func Load(path string) ([]Entry, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}

	var snapshot map[string]map[string]interface{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(snapshot))
	for url := range snapshot {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	result := make([]Entry, 0, len(snapshot))
	for _, url := range urls {
		entry := make(Entry, len(snapshot[url])+1)
		for k, v := range snapshot[url] {
			entry[k] = v
		}
		entry["url"] = url
		result = append(result, entry)
	}
	return result, nil
}
