package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeekLabels are the only valid week labels, in slot order. Every income record
// stores exactly one amount per label.
var WeekLabels = []string{"Week 1", "Week 2", "Week 3", "Week 4", "Week 5"}

var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type WeeklyExpense struct {
	Week   string  `bson:"week" json:"week"`
	Amount float64 `bson:"amount" json:"amount"`
}

type CategoryExpenses struct {
	Fixed       float64 `bson:"fixed" json:"fixed"`
	Variables   float64 `bson:"variables" json:"variables"`
	Investments float64 `bson:"investments" json:"investments"`
}

type IncomeRecord struct {
	Id               primitive.ObjectID `bson:"_id" json:"id"`
	UserId           primitive.ObjectID `bson:"user_id" json:"userId"`
	Salary           float64            `bson:"salary" json:"salary"`
	Month            string             `bson:"month" json:"month"`
	Week             string             `bson:"week" json:"week"`
	Year             int                `bson:"year" json:"year"`
	WeeklyExpenses   []WeeklyExpense    `bson:"weekly_expenses" json:"weeklyExpenses"`
	CategoryExpenses CategoryExpenses   `bson:"category_expenses" json:"categoryExpenses"`
	TotalSpent       float64            `bson:"total_spent" json:"totalSpent"`
	Savings          float64            `bson:"savings" json:"savings"`
	Note             string             `bson:"note" json:"note,omitempty"`
	Date             time.Time          `bson:"date" json:"date"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
