package usecase

import (
	"fmt"
	"strings"
	"time"

	"atelier_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Message templates sent through the notification dispatcher. The
// dispatcher renders them as HTML.

const currency = "ETB"

func money(d decimal.Decimal) string {
	return d.String() + " " + currency
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func dateLabel(t time.Time) string {
	return t.UTC().Format("Mon Jan 02 2006")
}

func msgOrderReceived() string {
	return "We’ve received your order form 🤍\nWe’ll review the details and get back to you shortly."
}

func msgOrderQuote(total decimal.Decimal, delivery time.Time, rushFee decimal.Decimal) string {
	fee := "None"
	if rushFee.IsPositive() {
		fee = money(rushFee)
	}
	return "Based on your order, here are the details:\n" +
		fmt.Sprintf("📌 Total price: <b>%s</b>\n", money(total)) +
		fmt.Sprintf("📌 Delivery date: <b>%s</b>\n", dateLabel(delivery)) +
		fmt.Sprintf("📌 Rush fee: <b>%s</b>\n\n", fee) +
		"A 30% deposit is required to confirm your order."
}

func msgDeliveryRescheduled(delivery time.Time, total decimal.Decimal) string {
	return fmt.Sprintf("Your delivery date is now <b>%s</b>.\n📌 Total price: <b>%s</b>", dateLabel(delivery), money(total))
}

func msgOrderConfirmed(orderType entities.OrderType, delivery time.Time) string {
	return "Your order has been confirmed 🤍\n" +
		fmt.Sprintf("📌 Order type: <b>%s</b>\n", humanize(string(orderType))) +
		fmt.Sprintf("📌 Delivery date: <b>%s</b>\n", dateLabel(delivery)) +
		"📌 Balance due on delivery\n\n" +
		"Thank you for trusting us."
}

func msgFinalPaymentReceived(orderID string) string {
	return fmt.Sprintf("✅ <b>Payment Received!</b> The balance for order <b>#%s</b> is settled. Thank you!", orderID)
}

func msgOrderReady(balanceDue decimal.Decimal) string {
	return "Your dress is ready 🤍\n" +
		"Please arrange pickup / delivery.\n" +
		fmt.Sprintf("Remaining balance: <b>%s</b>", money(balanceDue))
}

func msgOrderDelivered() string {
	return "✅ Your order has been <b>delivered</b>! We hope you love your new dress. Thank you for choosing us!"
}

func msgStatusUpdate(status entities.OrderStatus) string {
	return fmt.Sprintf("Your order status has been updated to: <b>%s</b>", humanize(string(status)))
}

func msgRevisionSubmitted(isFree bool, fee decimal.Decimal) string {
	if isFree {
		return "Revision request submitted. Status: <b>Approved (Free)</b>\nOur team is reviewing your request."
	}
	return "Revision request submitted. Status: <b>Pending Payment</b>\n" +
		fmt.Sprintf("📌 Revision fee: <b>%s</b>\n\nPlease send your payment to confirm the request.", money(fee))
}

func msgRevisionApproved(orderID string) string {
	return fmt.Sprintf("✅ Your revision request for order <b>#%s</b> has been <b>approved</b>! Our team is working on it.", orderID)
}

func msgRevisionRejected(orderID, reason string) string {
	if reason == "" {
		reason = "Please contact support"
	}
	return fmt.Sprintf("❌ Your revision request for order <b>#%s</b> was <b>not approved</b>. Reason: %s.", orderID, reason)
}

func msgRevisionApplied(orderID string) string {
	return fmt.Sprintf("🧵 Your updated measurements for order <b>#%s</b> are now in production.", orderID)
}

func msgRevisionFeePaid(orderID string) string {
	return fmt.Sprintf("✅ <b>Payment Received!</b> Your revision fee for order <b>#%s</b> has been confirmed. Thank you!", orderID)
}

func msgAdminNewOrder(o entities.Order, adminURL string) string {
	rushPercent := o.RushMultiplier.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100)).Round(0)
	rush := ""
	if rushPercent.IsPositive() {
		rush = fmt.Sprintf("\n⚠️ <b>RUSH ORDER (+%s%%)</b>", rushPercent.String())
	}
	return "<b>New Order Received! 👗</b>\n" +
		fmt.Sprintf("<b>Client:</b> %s\n", o.ClientProfile.FullName) +
		fmt.Sprintf("<b>Type:</b> %s\n", humanize(string(o.OrderType))) +
		fmt.Sprintf("<b>Occasion:</b> %s\n", o.Occasion) +
		fmt.Sprintf("<b>Delivery:</b> %s%s\n", dateLabel(o.PreferredDeliveryDate), rush) +
		fmt.Sprintf(`<a href="%s/orders/%s">View in Dashboard</a>`, adminURL, o.ID)
}

func msgAdminNewRevision(o entities.Order, r entities.Revision, adminURL string) string {
	fee := "FREE"
	if !r.IsFree {
		fee = money(r.RevisionFee) + " ⚠️ <b>PAYMENT REQUIRED</b>"
	}
	reason := r.RevisionReason
	if reason == "" {
		reason = "Not specified"
	}
	return "<b>New Revision Requested! 🛠️</b>\n" +
		fmt.Sprintf("<b>Order ID:</b> %s\n", o.ID) +
		fmt.Sprintf("<b>Client:</b> %s\n", o.ClientProfile.FullName) +
		fmt.Sprintf("<b>Reason:</b> %s\n", reason) +
		fmt.Sprintf("<b>Fee:</b> %s\n", fee) +
		fmt.Sprintf(`<a href="%s/revisions/%s">Review Revision</a>`, adminURL, r.ID)
}
