package validation

import (
	"fmt"

	"github.com/venturecast/venturecast/pkg/constants"
)

// ValidateOutputFormat checks that an output format name is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format: %s", format)
}
