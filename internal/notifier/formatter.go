package notifier

import (
	"fmt"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// FormatAlert formats a fired signal into the alert message template.
func FormatAlert(eval *model.Evaluation, assetName, timeframe string) string {
	return fmt.Sprintf("%s\n📍 %s (%s)\n💰 Price: %.4f\n🎯 TP1: %.4f\n🛑 SL: %.4f",
		eval.State.Label(), assetName, timeframe,
		eval.Candle.Close, eval.Targets.TakeProfit1, eval.Targets.StopLoss)
}

// FormatTest formats the connection-test message.
func FormatTest(assetName string) string {
	return fmt.Sprintf("🔔 *Nexus Test Alert*\nAsset: %s\nStatus: Connection Successful! 🚀", assetName)
}
