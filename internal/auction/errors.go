package auction

import "errors"

// Ошибки операций над лотами (edit_item / end_item). Закрытый набор:
// хендлеры маппят их в HTTP-статусы через errors.Is.
var (
	// ErrUpdate — сбой записи в персистентный слой; транзиентная, повтор безопасен.
	ErrUpdate = errors.New("update error")
	// ErrNoSuchAuction — лот с таким id не существует.
	ErrNoSuchAuction = errors.New("no such auction")
	// ErrAuctionIsNotActive — лот уже закрыт.
	ErrAuctionIsNotActive = errors.New("auction is not active")
	// ErrExpired — окно активности лота истекло.
	ErrExpired = errors.New("auction expired")
	// ErrAccessRejected — вызывающий не владелец лота.
	ErrAccessRejected = errors.New("access rejected")
	// ErrInvalidChoice — валюта не входит в допустимый набор или не совпадает с валютой лота.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Дополнительные ошибки операции bid.
var (
	// ErrBidAmountLessThanCurrent — ставка не превышает текущую сумму лота строго.
	ErrBidAmountLessThanCurrent = errors.New("bid amount less than current")
	// ErrReachMaxBid — ставка выше настроенного потолка.
	ErrReachMaxBid = errors.New("reach max bid")
	// ErrOwnerIsNotValid — заявленный владелец ставки не резолвится в вызывающего.
	ErrOwnerIsNotValid = errors.New("owner is not valid")
)
