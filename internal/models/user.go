// models содержит доменные сущности бота знакомств.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender — пол пользователя.
type Gender int8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unspecified"
	}
}

// Valid сообщает, является ли значение допустимым полом анкеты.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// MaritalStatus — семейное положение.
type MaritalStatus int8

const (
	MaritalUnspecified MaritalStatus = iota
	MaritalSingle
	MaritalMarried
	MaritalDivorced
)

// MaritalStatuses — все допустимые значения в порядке показа.
var MaritalStatuses = []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced}

func (m MaritalStatus) String() string {
	switch m {
	case MaritalSingle:
		return "single"
	case MaritalMarried:
		return "married"
	case MaritalDivorced:
		return "divorced"
	default:
		return "unspecified"
	}
}

func (m MaritalStatus) Valid() bool {
	return m >= MaritalSingle && m <= MaritalDivorced
}

// Interest — тег интереса из фиксированного набора.
type Interest int8

const (
	InterestUnspecified Interest = iota
	InterestSport
	InterestMusic
	InterestMovies
	InterestBooks
	InterestTravel
	InterestCooking
	InterestArt
	InterestTech
	InterestNature
	InterestPhoto
	InterestDance
	InterestYoga
	InterestGames
	InterestScience
)

// Interests — все допустимые интересы в порядке показа.
var Interests = []Interest{
	InterestSport, InterestMusic, InterestMovies, InterestBooks, InterestTravel,
	InterestCooking, InterestArt, InterestTech, InterestNature, InterestPhoto,
	InterestDance, InterestYoga, InterestGames, InterestScience,
}

var interestNames = map[Interest]string{
	InterestSport:   "sport",
	InterestMusic:   "music",
	InterestMovies:  "movies",
	InterestBooks:   "books",
	InterestTravel:  "travel",
	InterestCooking: "cooking",
	InterestArt:     "art",
	InterestTech:    "tech",
	InterestNature:  "nature",
	InterestPhoto:   "photo",
	InterestDance:   "dance",
	InterestYoga:    "yoga",
	InterestGames:   "games",
	InterestScience: "science",
}

func (i Interest) String() string {
	if name, ok := interestNames[i]; ok {
		return name
	}

	return "unspecified"
}

func (i Interest) Valid() bool {
	return i >= InterestSport && i <= InterestScience
}

// Language — язык интерфейса пользователя.
type Language int8

const (
	LanguageRU Language = iota + 1
	LanguageUZ
)

func (l Language) String() string {
	switch l {
	case LanguageUZ:
		return "uz"
	default:
		return "ru"
	}
}

func (l Language) Valid() bool {
	return l == LanguageRU || l == LanguageUZ
}

// ParseLanguage разбирает код языка; неизвестные коды дают LanguageRU.
func ParseLanguage(code string) Language {
	if code == "uz" {
		return LanguageUZ
	}

	return LanguageRU
}

// User — анкета пользователя.
// ExternalID — идентификатор в Telegram, уникален и не меняется.
// Username — контактный handle (без @), может быть пустым.
type User struct {
	ID            uuid.UUID
	ExternalID    int64
	Username      string
	Gender        Gender
	Age           int
	Height        int
	Weight        int
	MaritalStatus MaritalStatus
	Interests     []Interest
	Bio           string
	Language      Language
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
