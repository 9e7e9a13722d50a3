package service

import (
	"DailyManna/internal/cli/model"
	"strings"
)

// Access — решение контент-гейта для одного чтения.
type Access int

const (
	// AccessVisible — показать целиком.
	AccessVisible Access = iota
	// AccessLocked — показать заглушку с предложением подписки, тело скрыто.
	AccessLocked
	// AccessHidden — не показывать (битые/пустые поля рендерим плейсхолдером).
	AccessHidden
)

func (a Access) String() string {
	switch a {
	case AccessVisible:
		return "visible"
	case AccessLocked:
		return "locked"
	default:
		return "hidden"
	}
}

// Feature — переключаемая возможность. Политика строго бинарная:
// premium открывает всё, free получает только базовый набор.
type Feature int

const (
	// FeatureBaselineTranslation — базовый перевод, доступен всем.
	FeatureBaselineTranslation Feature = iota
	// FeatureAltTranslation — альтернативные переводы.
	FeatureAltTranslation
	// FeatureOfflineDownload — скачивание для офлайн-чтения.
	FeatureOfflineDownload
	// FeatureScreenshot — снятие скриншотов.
	FeatureScreenshot
	// FeatureAdSuppression — отключение рекламы.
	FeatureAdSuppression
	// FeaturePrioritySupport — приоритетный канал поддержки.
	FeaturePrioritySupport
)

// ContentGate — единственная точка решения «показывать или нет».
// Повторять проверку entitlement по месту вызова не нужно.
type ContentGate struct {
	freeDay string
}

// NewContentGate создаёт гейт с указанным бесплатным днём недели
// ("sunday".."saturday").
func NewContentGate(freeDay string) *ContentGate {
	return &ContentGate{freeDay: strings.ToLower(freeDay)}
}

// Decide возвращает решение для чтения при данном entitlement.
// Чтения бесплатного дня видимы всегда, независимо от подписки.
func (g *ContentGate) Decide(item *model.Devotional, entitled bool) Access {
	if item == nil || item.ID == "" || item.Title == "" {
		return AccessHidden
	}
	if strings.EqualFold(item.DayTag, g.freeDay) {
		return AccessVisible
	}
	if entitled {
		return AccessVisible
	}
	return AccessLocked
}

// CanUse сообщает, доступна ли возможность при данном entitlement.
func (g *ContentGate) CanUse(f Feature, entitled bool) bool {
	if entitled {
		return true
	}
	return f == FeatureBaselineTranslation
}
