package judge

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Cache persists model verdicts keyed by a digest of model, rule, and
// input. A regeneration loop re-validates near-identical content many
// times; cached verdicts keep those passes cheap and reproducible.
type Cache struct {
	Dir string
}

func verdictKey(model, ruleID, input string) string {
	h := sha256.Sum256([]byte(model + "\n" + ruleID + "\n" + input))
	return hex.EncodeToString(h[:])
}

func (c *Cache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// Get returns a cached verdict when present.
func (c *Cache) Get(model, ruleID, input string) (Verdict, bool) {
	if c.ensureDir() != nil {
		return Verdict{}, false
	}
	b, err := os.ReadFile(c.pathFor(verdictKey(model, ruleID, input)))
	if err != nil {
		return Verdict{}, false
	}
	var v Verdict
	if err := json.Unmarshal(b, &v); err != nil {
		return Verdict{}, false
	}
	return v, true
}

// Save stores a verdict; failures are ignored by callers since the cache
// is an optimization, never a correctness dependency.
func (c *Cache) Save(model, ruleID, input string, v Verdict) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(verdictKey(model, ruleID, input)), b, 0o644)
}
