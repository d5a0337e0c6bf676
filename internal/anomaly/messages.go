package anomaly

import "github.com/stellar-ptw/stellar/internal/lang"

type message struct {
	reason     lang.Text
	suggestion lang.Text
}

var (
	msgShortDescription = message{
		reason:     lang.Text{RU: "Слишком короткое описание работ", TR: "İş tanımı çok kısa", EN: "Work description is too short"},
		suggestion: lang.Text{RU: "Опишите работы подробнее: что, где и каким способом выполняется", TR: "İşi daha ayrıntılı tanımlayın: ne, nerede ve nasıl yapılacak", EN: "Describe the work in more detail: what, where and how"},
	}
	msgGenericDescription = message{
		reason:     lang.Text{RU: "Описание работ слишком общее", TR: "İş tanımı çok genel", EN: "Work description is too generic"},
		suggestion: lang.Text{RU: "Укажите конкретное оборудование и вид работ", TR: "Belirli ekipmanı ve iş türünü belirtin", EN: "Name the specific equipment and type of work"},
	}
	msgDangerousNoMeasures = message{
		reason:     lang.Text{RU: "Опасные работы без мер безопасности", TR: "Güvenlik önlemi olmadan tehlikeli çalışma", EN: "Dangerous work without safety measures"},
		suggestion: lang.Text{RU: "Добавьте меры безопасности для опасных работ", TR: "Tehlikeli çalışma için güvenlik önlemleri ekleyin", EN: "Add safety measures for the dangerous work"},
	}
	msgInvertedDates = message{
		reason:     lang.Text{RU: "Дата окончания раньше даты начала", TR: "Bitiş tarihi başlangıç tarihinden önce", EN: "End date is before start date"},
		suggestion: lang.Text{RU: "Проверьте даты начала и окончания работ", TR: "Başlangıç ve bitiş tarihlerini kontrol edin", EN: "Check the start and end dates"},
	}
	msgLongDuration = message{
		reason:     lang.Text{RU: "Слишком большая продолжительность работ (более 30 дней)", TR: "Çalışma süresi çok uzun (30 günden fazla)", EN: "Work duration is too long (over 30 days)"},
		suggestion: lang.Text{RU: "Разбейте работы на несколько нарядов", TR: "Çalışmayı birkaç izne bölün", EN: "Split the work into several permits"},
	}
	msgShortDuration = message{
		reason:     lang.Text{RU: "Слишком малая продолжительность работ (менее 15 минут)", TR: "Çalışma süresi çok kısa (15 dakikadan az)", EN: "Work duration is too short (under 15 minutes)"},
		suggestion: lang.Text{RU: "Проверьте время окончания работ", TR: "Bitiş saatini kontrol edin", EN: "Check the end time"},
	}
	msgShortLocation = message{
		reason:     lang.Text{RU: "Место проведения работ указано недостаточно конкретно", TR: "Çalışma yeri yeterince belirgin değil", EN: "Work location is not specific enough"},
		suggestion: lang.Text{RU: "Укажите цех, участок или номер оборудования", TR: "Atölye, bölüm veya ekipman numarasını belirtin", EN: "Give the workshop, area or equipment number"},
	}
	msgNoResponsible = message{
		reason:     lang.Text{RU: "Не назначен ответственный руководитель работ", TR: "Sorumlu kişi atanmamış", EN: "No responsible person assigned"},
		suggestion: lang.Text{RU: "Назначьте ответственного за проведение работ", TR: "Çalışmadan sorumlu bir kişi atayın", EN: "Assign a person responsible for the work"},
	}
	msgNoPPEDangerous = message{
		reason:     lang.Text{RU: "Для опасных работ не указаны СИЗ", TR: "Tehlikeli çalışma için KKD belirtilmemiş", EN: "No PPE specified for dangerous work"},
		suggestion: lang.Text{RU: "Укажите необходимые средства индивидуальной защиты", TR: "Gerekli kişisel koruyucu donanımı belirtin", EN: "Specify the required personal protective equipment"},
	}

	msgShortName = message{
		reason:     lang.Text{RU: "Слишком короткое имя", TR: "İsim çok kısa", EN: "Name is too short"},
		suggestion: lang.Text{RU: "Укажите полное имя сотрудника", TR: "Çalışanın tam adını girin", EN: "Enter the employee's full name"},
	}
	msgNameDigits = message{
		reason:     lang.Text{RU: "Имя содержит цифры", TR: "İsim rakam içeriyor", EN: "Name contains digits"},
		suggestion: lang.Text{RU: "Проверьте правильность написания имени", TR: "İsmin yazımını kontrol edin", EN: "Check the spelling of the name"},
	}
	msgBadEmail = message{
		reason:     lang.Text{RU: "Некорректный формат email", TR: "Geçersiz e-posta biçimi", EN: "Invalid email format"},
		suggestion: lang.Text{RU: "Укажите email в формате name@example.com", TR: "E-postayı ad@ornek.com biçiminde girin", EN: "Use the name@example.com format"},
	}
	msgBadPhone = message{
		reason:     lang.Text{RU: "Некорректная длина номера телефона", TR: "Telefon numarası uzunluğu geçersiz", EN: "Invalid phone number length"},
		suggestion: lang.Text{RU: "Номер должен содержать от 10 до 15 цифр", TR: "Numara 10 ile 15 rakam arasında olmalı", EN: "The number must have 10 to 15 digits"},
	}
)

var (
	warnPastStart = lang.Text{
		RU: "Дата начала работ в прошлом",
		TR: "Başlangıç tarihi geçmişte",
		EN: "Start date is in the past",
	}
	warnNoLocation = lang.Text{
		RU: "Не указано место проведения работ",
		TR: "Çalışma yeri belirtilmemiş",
		EN: "Work location is not specified",
	}
	warnNoPPE = lang.Text{
		RU: "Не указаны средства индивидуальной защиты",
		TR: "Kişisel koruyucu donanım belirtilmemiş",
		EN: "No personal protective equipment specified",
	}
)

// Quality banners keyed by score bracket.
var (
	bannerExcellent = lang.Text{RU: "Отличное качество данных", TR: "Mükemmel veri kalitesi", EN: "Excellent data quality"}
	bannerGood      = lang.Text{RU: "Хорошее качество данных", TR: "İyi veri kalitesi", EN: "Good data quality"}
	bannerImprove   = lang.Text{RU: "Качество данных требует улучшения", TR: "Veri kalitesinin iyileştirilmesi gerekiyor", EN: "Data quality needs improvement"}
	bannerPoor      = lang.Text{RU: "Низкое качество данных: исправьте ошибки перед сохранением", TR: "Düşük veri kalitesi: kaydetmeden önce hataları düzeltin", EN: "Poor data quality: fix the errors before saving"}
)

func banner(score float64) lang.Text {
	switch {
	case score >= 90:
		return bannerExcellent
	case score >= 70:
		return bannerGood
	case score >= 50:
		return bannerImprove
	default:
		return bannerPoor
	}
}
