// Package chat holds the keyword-matching support bot behind the chat
// widget. It is deliberately dumb: first matching topic wins.
package chat

import "strings"

const fallbackReply = "Thank you for your question! For detailed assistance, I recommend speaking with one of our specialists. You can book an appointment online or call us at (555) 123-4567. Is there anything specific about our products or services I can help you with?"

type topic struct {
	keywords []string
	reply    string
}

var topics = []topic{
	{
		keywords: []string{"appointment", "book"},
		reply:    "You can book an appointment through our appointments page. We offer eye exams, contact lens fittings, frame consultations, and prescription updates. Would you like me to point you to a specific service?",
	},
	{
		keywords: []string{"face shape", "glasses"},
		reply:    "Finding the right frames for your face shape makes all the difference! Round faces suit rectangular frames, square faces suit round or oval frames, and aviators flatter most shapes. A free frame style consultation can help you decide.",
	},
	{
		keywords: []string{"prescription", "status"},
		reply:    "For prescription questions or order status, please have your order reference ready. You can check appointment and order details from your profile page, or our staff can look it up in store.",
	},
	{
		keywords: []string{"hours", "location", "store"},
		reply:    "We're open Monday to Saturday, 9 AM to 7 PM. You'll find us at 123 Vision Street. Walk-ins are welcome, but booked appointments are seen first.",
	},
	{
		keywords: []string{"price", "cost"},
		reply:    "Our glasses start from $149 including basic lenses. Premium lenses and designer frames are available at additional cost. Would you like information about specific products or services?",
	},
}

// Reply returns the bot's answer for a visitor message.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.reply
			}
		}
	}
	return fallbackReply
}
