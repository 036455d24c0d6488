package catalog

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// WriteDataToFile serializes data as JSON and overwrites path with it.
//
// Failures are logged and swallowed: callers treat the write as
// fire-and-forget. Concurrent writers to the same path must coordinate
// themselves.
func WriteDataToFile(logger *zap.Logger, data any, path string) {
	b, err := json.Marshal(data)
	if err != nil {
		logger.Error("serializing data", zap.String("path", path), zap.Error(err))
		return
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		logger.Error("writing data file", zap.String("path", path), zap.Error(err))
	}
}
