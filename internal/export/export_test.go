package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:           "o2",
			EmployeeName: "Rohan Gupta",
			Tea:          "Green Tea",
			Snack:        "Biscuits",
			Amount:       15,
			OrderDate:    time.Date(2025, 6, 3, 15, 10, 0, 0, time.UTC),
		},
		{
			ID:           "o1",
			EmployeeName: "Anjali Sharma",
			Tea:          "Masala Chai",
			Snack:        "Samosa",
			Amount:       25,
			OrderDate:    time.Date(2025, 6, 2, 15, 5, 30, 0, time.UTC),
		},
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	orders := sampleOrders()
	body, err := CSV(orders)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"Rohan Gupta", "Green Tea", "Biscuits", "15.00", "2025-06-03 15:10:00"}, records[1])
	assert.Equal(t, []string{"Anjali Sharma", "Masala Chai", "Samosa", "25.00", "2025-06-02 15:05:30"}, records[2])
}

func TestCSV_Empty(t *testing.T) {
	t.Parallel()

	body, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Employee,Tea,Snack,Amount,Date\n", body)
}

func TestPrintableReport(t *testing.T) {
	t.Parallel()

	body := PrintableReport(sampleOrders(), "2025-06-01", "2025-06-07")

	assert.True(t, strings.HasPrefix(body, "Sip & Snack Order Report (2025-06-01 to 2025-06-07)\n"))
	for _, h := range Header {
		assert.Contains(t, body, h)
	}
	assert.Contains(t, body, "Anjali Sharma")
	assert.Contains(t, body, "Masala Chai")
	assert.Contains(t, body, "25.00")
	assert.Contains(t, body, "2025-06-03 15:10:00")

	// Newest order row stays above the older one.
	assert.Less(t, strings.Index(body, "Rohan Gupta"), strings.Index(body, "Anjali Sharma"))
}

func TestFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sip-and-snack-orders-2025-06-01_to_2025-06-07.csv", Filename("2025-06-01", "2025-06-07", "csv"))
	assert.Equal(t, "sip-and-snack-orders-start_to_end.txt", Filename("start", "end", "txt"))
}
