package model

// Devotional — локальная проекция чтения из удалённого хранилища.
// Только для чтения: правки на клиенте не предусмотрены.
type Devotional struct {
	ID          string
	Title       string
	Body        string
	PublishedAt int64 // unix seconds
	DayTag      string
}

// DownloadedCopy — явно скачанная для офлайна копия чтения.
// Не больше одной копии на идентификатор (upsert).
type DownloadedCopy struct {
	ID           string
	Title        string
	Body         string
	PublishedAt  int64
	DayTag       string
	DownloadedAt int64
}
