package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды модуля калькулятора
	RecordNotFound      failure.ErrorCode = "RecordNotFound"      // Запись истории не найдена
	EmptyMemo           failure.ErrorCode = "EmptyMemo"           // Сохранение без метки запрещено
	InvalidDiscountMode failure.ErrorCode = "InvalidDiscountMode" // Мусор вместо amount/percent
	InvalidQuoteInput   failure.ErrorCode = "InvalidQuoteInput"
	StoreNotConfigured  failure.ErrorCode = "StoreNotConfigured" // Персистентность выключена конфигом
)
