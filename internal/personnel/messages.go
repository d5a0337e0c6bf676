package personnel

import "github.com/stellar-ptw/stellar/internal/lang"

var roleNames = map[Role]lang.Text{
	RoleIssuer:     {RU: "выдающий наряд", TR: "izin veren", EN: "issuer"},
	RoleSupervisor: {RU: "руководитель работ", TR: "iş sorumlusu", EN: "supervisor"},
	RoleForeman:    {RU: "производитель работ", TR: "ustabaşı", EN: "foreman"},
	RoleWorker:     {RU: "член бригады", TR: "çalışan", EN: "worker"},
}

func roleName(r Role, l lang.Language) string {
	if t, ok := roleNames[r]; ok {
		return t.For(l)
	}
	return string(r)
}

// seniorityMarkers are position substrings that earn the experience bonus.
var seniorityMarkers = []string{
	"senior", "lead", "chief", "head", "principal",
	"старш", "ведущ", "главн", "начальник",
	"kıdemli", "şef", "müdür",
}

var (
	reasonRoleMatch = lang.Text{
		RU: "Роль соответствует: %s",
		TR: "Rol uygun: %s",
		EN: "Role matches: %s",
	}
	warnRoleMismatch = lang.Text{
		RU: "Роль не соответствует требуемой (%s)",
		TR: "Rol gereken rolle uyuşmuyor (%s)",
		EN: "Role does not match the required one (%s)",
	}
	reasonDepartment = lang.Text{
		RU: "Сотрудник того же подразделения",
		TR: "Aynı departmandan",
		EN: "Same department",
	}
	reasonSkills = lang.Text{
		RU: "Квалификация: %d из %d требуемых навыков",
		TR: "Yeterlilik: gereken %d/%d beceri",
		EN: "Qualifications: %d of %d required skills",
	}
	reasonDuties = lang.Text{
		RU: "Обязанности соответствуют характеру работ",
		TR: "Görevleri iş ile uyumlu",
		EN: "Duties match the work",
	}
	reasonExperience = lang.Text{
		RU: "Опытный сотрудник",
		TR: "Deneyimli çalışan",
		EN: "Experienced employee",
	}
)

var (
	warnRoleUncovered = lang.Text{
		RU: "Не найден сотрудник на роль: %s",
		TR: "Bu rol için çalışan bulunamadı: %s",
		EN: "No one found for role: %s",
	}
	warnTeamShort = lang.Text{
		RU: "Команда неполная: %d из %d",
		TR: "Ekip eksik: %d/%d",
		EN: "Team is short: %d of %d",
	}
	recFullyStaffed = lang.Text{
		RU: "Команда полностью укомплектована",
		TR: "Ekip tamamen oluşturuldu",
		EN: "Team is fully staffed",
	}
	recAddExperienced = lang.Text{
		RU: "Рекомендуется включить в команду опытного сотрудника",
		TR: "Ekibe deneyimli bir çalışan eklenmesi önerilir",
		EN: "Consider adding an experienced member to the team",
	}
)
