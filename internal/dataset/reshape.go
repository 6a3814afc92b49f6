package dataset

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// Longer reshapes wide data to long: the columns cols are folded into a key
// column holding the former column name and a value column holding its
// cell. Remaining columns are repeated for every folded column.
func Longer(t *table.Table, key, value string, cols ...string) (*table.Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("longer: no columns to fold")
	}
	if key == "" || value == "" || key == value {
		return nil, fmt.Errorf("longer: key and value column names must be distinct and non-empty")
	}

	var elem reflect.Type
	folded := make(map[string]bool, len(cols))
	for _, c := range cols {
		data := t.Column(c)
		if data == nil {
			return nil, fmt.Errorf("longer: no column %q", c)
		}
		if folded[c] {
			return nil, fmt.Errorf("longer: column %q listed twice", c)
		}
		folded[c] = true
		if et := reflect.TypeOf(data).Elem(); elem == nil {
			elem = et
		} else if et != elem {
			return nil, fmt.Errorf("longer: column %q holds %v, others hold %v", c, et, elem)
		}
	}
	for _, existing := range t.Columns() {
		if folded[existing] {
			continue
		}
		if existing == key || existing == value {
			return nil, fmt.Errorf("longer: column %q already exists", existing)
		}
	}

	// t is ungrouped, so the result has exactly the root group.
	long := table.Unpivot(t, key, value, cols...)
	return long.Table(long.Tables()[0]), nil
}
