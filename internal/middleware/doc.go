// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含跨來源資源共用 (CORS) 的處理，掛載在整個路由器上，
// 因此 404 與 405 回應以及沒有對應 OPTIONS 路由的預檢請求也會經過它。
package middleware
