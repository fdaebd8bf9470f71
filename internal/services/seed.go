package services

import "lottery-system/models"

// Seed content written on first run when a collection has never been persisted.
// Each call returns fresh slices so callers may mutate them.

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Adarsh Kumar", Phone: "9876543210", Email: "adarsh@example.com", Role: models.RoleUser, WalletBalance: 2000, IsActive: true},
		{ID: "u2", Name: "Admin User", Phone: AdminPhone, Email: "admin@kerala.gov.in", Role: models.RoleAdmin, WalletBalance: 99999, IsActive: true},
	}
}

func seedTickets() []models.PurchasedTicket {
	return []models.PurchasedTicket{
		{ID: "t1", LotteryName: "POOJA BUMPER", DrawCode: "BR-106", DrawNumber: "106", DrawDate: "2023-11-20", Series: "NA", Number: "458291", PurchaseDate: "2023-10-27", Status: models.TicketUpcoming},
		{ID: "t2", LotteryName: "POOJA BUMPER", DrawCode: "BR-106", DrawNumber: "106", DrawDate: "2023-11-20", Series: "NB", Number: "112233", PurchaseDate: "2023-10-28", Status: models.TicketUpcoming},
		{ID: "t3", LotteryName: "BHAGYATHARA", DrawCode: "BT-30", DrawNumber: "30", DrawDate: "2023-10-25", Series: "BU", Number: "142769", PurchaseDate: "2023-10-20", Status: models.TicketWon, PrizeAmount: "₹1,00,00,000", PrizeRank: "1st Prize"},
		{ID: "t4", LotteryName: "AKSHAYA", DrawCode: "AK-56", DrawNumber: "56", DrawDate: "2023-09-15", Series: "AZ", Number: "885522", PurchaseDate: "2023-09-10", Status: models.TicketLost},
	}
}

func seedDraws() []models.LotteryDraw {
	return []models.LotteryDraw{
		{ID: "1", Name: "BHAGYATHARA", Code: "BT-30", DrawDate: "2023-10-25", DrawNumber: "30", FirstPrize: "₹1,00,00,000", FirstPrizeWinner: "BU 142769", ImageURL: "https://picsum.photos/seed/bt30/400/200", Status: models.DrawCompleted},
		{ID: "2", Name: "SAMRUDHI", Code: "SM-30", DrawDate: "2023-10-26", DrawNumber: "106", FirstPrize: "₹50,00,000", ImageURL: "https://picsum.photos/seed/sm30/400/200", Status: models.DrawCompleted},
		{ID: "3", Name: "POOJA BUMPER", Code: "BR-106", DrawDate: "2023-11-20", DrawNumber: "106", FirstPrize: "₹10,00,00,000", ImageURL: "https://picsum.photos/seed/br106/400/200", Status: models.DrawUpcoming},
	}
}

func seedPrizeStructures() models.PrizeStructures {
	return models.PrizeStructures{
		"BT-30": {
			{Rank: "1st Prize", Amount: "₹1,00,00,000", Winners: []string{"BU 142769"}},
			{Rank: "Consolation", Amount: "₹8,000", Winners: []string{"BN 142769", "BO 142769", "BP 142769", "BS 142769", "BT 142769", "BV 142769", "BW 142769", "BX 142769", "BY 142769", "BZ 142769"}},
			{Rank: "2nd Prize", Amount: "₹10,00,000", Winners: []string{"BW 334420"}},
			{Rank: "3rd Prize", Amount: "₹5,000", Winners: []string{"0081", "0245", "1289", "2945", "3956", "4123", "5567", "6789", "7890", "8901", "9012", "1122", "3344", "5566", "7788", "9900", "1357", "2468"}},
			{Rank: "4th Prize", Amount: "₹2,000", Winners: []string{"1113", "1790", "1794", "3033", "4521", "6632", "7741", "8852"}},
			{Rank: "5th Prize", Amount: "₹1,000", Winners: []string{"0123", "2345", "3456", "5543", "6654", "7765"}},
			{Rank: "6th Prize", Amount: "₹500", Winners: []string{"0001", "0002", "0003", "0004", "0005", "0006", "0007", "0008", "0009", "0010", "1234", "5678", "9988", "7766"}},
			{Rank: "7th Prize", Amount: "₹100", Winners: []string{"0123", "2345", "3456", "1231", "9999", "8888", "7777", "6666"}},
		},
		"SM-30": {
			{Rank: "1st Prize", Amount: "₹50,00,000", Winners: []string{"SZ 882190"}},
			{Rank: "Consolation", Amount: "₹8,000", Winners: []string{"SA 882190", "SB 882190", "SC 882190", "SD 882190", "SE 882190"}},
			{Rank: "2nd Prize", Amount: "₹10,00,000", Winners: []string{"SK 112233"}},
			{Rank: "3rd Prize", Amount: "₹5,000", Winners: []string{"1234", "5678", "9012", "3456", "7890"}},
			{Rank: "4th Prize", Amount: "₹2,000", Winners: []string{"1111", "2222", "3333", "4444", "5555", "6666", "7777"}},
			{Rank: "5th Prize", Amount: "₹1,000", Winners: []string{"0123", "2345", "3456", "5543"}},
		},
		"BR-106": {},
	}
}

func seedInventory() []models.LotteryItem {
	return []models.LotteryItem{
		{ID: "POOJA", Name: "Pooja Bumper", Code: "BR-106", DrawNumber: "106", DrawDate: "2023-11-20", Price: 200, Jackpot: "12 Cr"},
		{ID: "WINWIN", Name: "Win-Win", Code: "W-742", DrawNumber: "742", DrawDate: "2023-11-25", Price: 40, Jackpot: "75 L"},
		{ID: "STHREE", Name: "Sthree Sakthi", Code: "SS-388", DrawNumber: "388", DrawDate: "2023-11-26", Price: 40, Jackpot: "75 L"},
	}
}

func seedFAQs() []models.FAQItem {
	return []models.FAQItem{
		{ID: "1", Question: "How do I check my ticket results?", Answer: "Go to the Results page or use the Ticket Check feature. You can scan the QR code on your ticket or enter the number manually."},
		{ID: "2", Question: "How do I claim a prize?", Answer: "For prizes up to ₹5,000, visit any authorized lottery stall. For amounts above ₹5,000, please visit the District Lottery Office with your winning ticket and ID proof."},
		{ID: "3", Question: "Can I buy tickets online?", Answer: `Yes, use the "Buy Ticket" feature in this app. Payment is processed securely, and digital tickets are stored in your profile under "My Tickets".`},
		{ID: "4", Question: "Is this the official app?", Answer: "Yes, this is the official mobile application for the Directorate of Kerala State Lotteries."},
	}
}
