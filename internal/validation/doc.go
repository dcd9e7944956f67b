// Package validation проверяет тело запросов на создание и замену позиций меню.
//
// Проверки полей независимы и выполняются в фиксированном порядке:
// name, description, price, category, ingredients, available.
// Каждая возвращает не больше одной ошибки; все ошибки собираются
// в Errors и отдаются клиенту одним ответом 400.
//
// Ограничения длины, диапазона и набора значений описаны правилами
// go-playground/validator.
package validation
