package errclass

import "os"

// ProbeResult reports the current accessibility of one protected root.
type ProbeResult struct {
	Path     string `json:"path"`
	Readable bool   `json:"readable"`
	Detail   string `json:"detail,omitempty"`
}

// Probe re-tests accessibility of the curated protected roots, for the
// externally triggered "re-test accessibility" command. Roots that do
// not exist on this machine are skipped.
func (c *Classifier) Probe() []ProbeResult {
	var results []ProbeResult
	for _, root := range c.roots {
		if _, err := os.Lstat(root); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			results = append(results, ProbeResult{Path: root, Readable: false, Detail: err.Error()})
			continue
		}
		results = append(results, probePath(root))
	}
	return results
}

// probePath checks a single existing path for readability. The access
// check is advisory; an actual ReadDir confirms it.
func probePath(path string) ProbeResult {
	if err := checkAccess(path); err != nil {
		return ProbeResult{Path: path, Readable: false, Detail: err.Error()}
	}
	if _, err := os.ReadDir(path); err != nil {
		return ProbeResult{Path: path, Readable: false, Detail: err.Error()}
	}
	return ProbeResult{Path: path, Readable: true}
}
