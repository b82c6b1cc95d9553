package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV_Write_And_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := NewCSV(path)
	assert.Equal(t, nil, err)

	assert.Equal(t, nil, out.Write([]string{"event_ts", "customer_id", "cost"}))
	assert.Equal(t, nil, out.Write([]string{"2026-03-01 10:30:00", "CUST00001", "0.25"}))
	assert.Equal(t, nil, out.Write([]string{"2026-03-01 11:00:00", "CUST00002", ""}))
	assert.Equal(t, nil, out.Close())

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)
	assert.Equal(t,
		"event_ts,customer_id,cost\n"+
			"2026-03-01 10:30:00,CUST00001,0.25\n"+
			"2026-03-01 11:00:00,CUST00002,\n",
		string(data))
}

func TestNewCSV_Missing_Directory(t *testing.T) {
	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}
