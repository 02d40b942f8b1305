package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// sanitizePathError removes the path from os.PathError to prevent information leakage.
// This ensures error messages don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Return just the operation and underlying error, without the path
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

const (
	// MaxRuleFileSize is the maximum allowed size for a rule file (1MB).
	// This limit prevents denial-of-service attacks via extremely large files.
	MaxRuleFileSize = 1 * 1024 * 1024 // 1 MB

	// MaxRegexLength is the maximum allowed length for a rule regex (512 bytes).
	// This limit helps mitigate ReDoS (Regular Expression Denial of Service)
	// attacks by preventing excessively complex patterns.
	MaxRegexLength = 512

	// MaxRuleCount is the maximum number of rules allowed in a rule file.
	// This limit prevents CPU exhaustion via files with thousands of rules.
	MaxRuleCount = 1000

	// SupportedVersion is the currently supported rule file format version.
	SupportedVersion = 1
)

// Load reads and parses a rule file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// validation.
//
// Security: This function protects against FIFO/device file DoS attacks by:
//   - Opening the file and stat-ing the file descriptor (avoiding TOCTOU)
//   - Rejecting non-regular files (FIFO, device, socket, etc.)
//   - Using io.LimitReader to enforce size limits during read
func Load(path string) (*RuleFile, error) {
	// Open file first (don't use os.ReadFile which doesn't check file type)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor (not the path) to avoid TOCTOU
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat rule file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("rule file must be a regular file (not FIFO, device, or special file)")
	}

	// Check size constraints
	if info.Size() == 0 {
		return nil, errors.New("rule file is empty")
	}
	if info.Size() > MaxRuleFileSize {
		return nil, fmt.Errorf("rule file too large: %d bytes (max %d)", info.Size(), MaxRuleFileSize)
	}

	// Read with size limit to prevent unbounded reads
	// Read MaxRuleFileSize+1 to detect if file grows beyond limit
	data, err := io.ReadAll(io.LimitReader(f, MaxRuleFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", sanitizePathError(err))
	}

	// Double-check size (protects against file growing between Stat and Read)
	if len(data) > MaxRuleFileSize {
		return nil, fmt.Errorf("rule file too large: %d bytes (max %d)", len(data), MaxRuleFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a rule file from a byte slice.
// Returns an error if the data cannot be parsed or fails validation.
//
// Example:
//
//	data := []byte("version: 1\nrules:\n  - id: hype\n    ...")
//	rf, err := rules.LoadBytes(data)
func LoadBytes(data []byte) (*RuleFile, error) {
	if len(data) == 0 {
		return nil, errors.New("rule file is empty")
	}
	if len(data) > MaxRuleFileSize {
		return nil, fmt.Errorf("rule file too large: %d bytes (max %d)", len(data), MaxRuleFileSize)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rf.Validate(); err != nil {
		return nil, err
	}

	return &rf, nil
}

// Validate performs schema-level validation on the rule file.
// It checks for:
//   - Supported version number
//   - At least one rule
//   - Required fields (id, sentiment, and at least one trigger)
//   - Unique rule IDs
//   - Regex length limits (ReDoS protection)
//
// Note: This function does NOT compile regular expressions. Regex
// compilation and validation happens in NewClassifier() to avoid
// duplicating work.
func (rf *RuleFile) Validate() error {
	// Check version
	if rf.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", rf.Version, SupportedVersion),
		}
	}

	// Check for at least one rule
	if len(rf.Rules) == 0 {
		return &ValidationError{
			Field:   "rules",
			Message: "at least one rule is required",
		}
	}

	// Check for maximum rule count
	if len(rf.Rules) > MaxRuleCount {
		return &ValidationError{
			Field:   "rules",
			Message: fmt.Sprintf("too many rules (%d), maximum allowed is %d", len(rf.Rules), MaxRuleCount),
		}
	}

	// Track IDs for uniqueness check
	seenIDs := make(map[string]int, len(rf.Rules))

	// Validate each rule
	for i, r := range rf.Rules {
		// Check required fields
		if r.ID == "" {
			return &RuleError{
				Index:   i,
				Field:   "id",
				Message: "id is required",
			}
		}
		if r.Sentiment == "" {
			return &RuleError{
				Index:   i,
				ID:      r.ID,
				Field:   "sentiment",
				Message: "sentiment is required",
			}
		}
		if len(r.Contains) == 0 && r.Regex == "" {
			return &RuleError{
				Index:   i,
				ID:      r.ID,
				Field:   "contains",
				Message: "at least one of contains or regex is required",
			}
		}
		for j, trigger := range r.Contains {
			if trigger == "" {
				return &RuleError{
					Index:   i,
					ID:      r.ID,
					Field:   "contains",
					Message: fmt.Sprintf("contains[%d] must not be empty", j),
				}
			}
		}

		// Check ID uniqueness
		if prevIndex, exists := seenIDs[r.ID]; exists {
			return &RuleError{
				Index:   i,
				ID:      r.ID,
				Field:   "id",
				Message: fmt.Sprintf("duplicate id (previously defined at rule[%d])", prevIndex),
			}
		}
		seenIDs[r.ID] = i

		// Check regex length for ReDoS protection
		if len(r.Regex) > MaxRegexLength {
			return &RuleError{
				Index:   i,
				ID:      r.ID,
				Field:   "regex",
				Message: fmt.Sprintf("regex too long: %d bytes (max %d)", len(r.Regex), MaxRegexLength),
			}
		}
	}

	return nil
}
