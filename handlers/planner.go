package handlers

import (
	"lifehub/app"

	"github.com/gofiber/fiber/v2"
)

// Calendar events

func ListEvents(a *app.App) fiber.Handler {
	return listOwned(a.EventService.List)
}

func GetEvent(a *app.App) fiber.Handler {
	return getOwned(a.EventService.Get)
}

func CreateEvent(a *app.App) fiber.Handler {
	return createOwned(a, a.EventService.Create)
}

func UpdateEvent(a *app.App) fiber.Handler {
	return updateOwned(a, a.EventService.Update)
}

func DeleteEvent(a *app.App) fiber.Handler {
	return deleteOwned(a.EventService.Delete)
}

// Budget transactions

func ListTransactions(a *app.App) fiber.Handler {
	return listOwned(a.TransactionService.List)
}

func GetTransaction(a *app.App) fiber.Handler {
	return getOwned(a.TransactionService.Get)
}

func CreateTransaction(a *app.App) fiber.Handler {
	return createOwned(a, a.TransactionService.Create)
}

func UpdateTransaction(a *app.App) fiber.Handler {
	return updateOwned(a, a.TransactionService.Update)
}

func DeleteTransaction(a *app.App) fiber.Handler {
	return deleteOwned(a.TransactionService.Delete)
}

// Contacts

func ListContacts(a *app.App) fiber.Handler {
	return listOwned(a.ContactService.List)
}

func GetContact(a *app.App) fiber.Handler {
	return getOwned(a.ContactService.Get)
}

func CreateContact(a *app.App) fiber.Handler {
	return createOwned(a, a.ContactService.Create)
}

func UpdateContact(a *app.App) fiber.Handler {
	return updateOwned(a, a.ContactService.Update)
}

func DeleteContact(a *app.App) fiber.Handler {
	return deleteOwned(a.ContactService.Delete)
}

// Journal

func ListJournalEntries(a *app.App) fiber.Handler {
	return listOwned(a.JournalService.List)
}

func GetJournalEntry(a *app.App) fiber.Handler {
	return getOwned(a.JournalService.Get)
}

func CreateJournalEntry(a *app.App) fiber.Handler {
	return createOwned(a, a.JournalService.Create)
}

func UpdateJournalEntry(a *app.App) fiber.Handler {
	return updateOwned(a, a.JournalService.Update)
}

func DeleteJournalEntry(a *app.App) fiber.Handler {
	return deleteOwned(a.JournalService.Delete)
}
