package transaction

import "fmt"

// HandleError annotates a failed step inside a transaction. The cause stays
// wrapped so errors.Is/As keep working at the call site.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("transaction %s: %s: %w", operation, step, err)
}
