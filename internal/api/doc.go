// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責將查詢參數轉換為對 service 的調用，並將結果或錯誤轉換回 JSON 響應。
package api
