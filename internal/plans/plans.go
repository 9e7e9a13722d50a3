package plans

import "time"

// Plan — тарифный план подписки с фиксированной ценой и сроком действия.
// Цена хранится в минимальных единицах валюты (копейки/центы/кобо),
// чтобы избежать проблем с плавающей точкой.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	Months      int    `json:"months"`
}

// Каталог планов. Идентификатор плана попадает в PaymentRecord.PlanID
// и на его основе вычисляется срок действия подписки.
var catalog = []Plan{
	{ID: "1-Month Premium", Name: "Premium на 1 месяц", AmountMinor: 50000, Currency: "NGN", Months: 1},
	{ID: "3-Month Premium", Name: "Premium на 3 месяца", AmountMinor: 135000, Currency: "NGN", Months: 3},
	{ID: "6-Month Premium", Name: "Premium на 6 месяцев", AmountMinor: 250000, Currency: "NGN", Months: 6},
	{ID: "12-Month Premium", Name: "Premium на 12 месяцев", AmountMinor: 450000, Currency: "NGN", Months: 12},
}

// All возвращает копию каталога планов.
func All() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// Find возвращает план по идентификатору.
func Find(id string) (Plan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// ExpiryOf вычисляет момент окончания действия плана, купленного в createdAt.
// Срок считается календарными месяцами: 2025-01-01 + 3 месяца = 2025-04-01.
// Для неизвестного плана возвращается сам createdAt (подписка сразу истекла).
func ExpiryOf(planID string, createdAt time.Time) time.Time {
	p, ok := Find(planID)
	if !ok {
		return createdAt
	}
	return createdAt.AddDate(0, p.Months, 0)
}

// ActiveAt сообщает, действует ли план, купленный в createdAt, в момент now.
// Граница исключающая: ровно в момент истечения доступ уже закрыт.
func ActiveAt(planID string, createdAt, now time.Time) bool {
	return now.Before(ExpiryOf(planID, createdAt))
}
