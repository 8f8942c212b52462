package notify

import (
	"go.uber.org/zap"

	"github.com/mhdasif123/SipandSnack/internal/domain"
)

// LogNotifier stands in for the HR WhatsApp webhook. It only logs; real
// delivery is out of scope, and whatever happens here must never surface to
// the submitter.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OrderPlaced(order domain.Order) {
	n.logger.Info("simulating whatsapp webhook call to hr",
		zap.String("order_id", order.ID),
		zap.String("employee", order.EmployeeName),
		zap.String("tea", order.Tea),
		zap.String("snack", order.Snack),
		zap.Float64("amount", order.Amount),
		zap.Time("order_date", order.OrderDate),
	)
}
