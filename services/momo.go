package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DungDEV-code/Resort-BookingRoom-sub001/config"
	"github.com/DungDEV-code/Resort-BookingRoom-sub001/errors"
)

const (
	// Phiên bản cấu trúc extraData, tăng khi đổi schema
	bookingTokenVersion = 1

	momoRequestType = "captureWallet"
	momoLang        = "vi"
)

// Mã kết quả MoMo: 0/9000 coi là thành công, nhóm 1000/7000/7002 là đang xử lý
const (
	MomoResultSuccess    = 0
	MomoResultAuthorized = 9000
)

var momoPendingCodes = map[int]bool{
	1000: true,
	7000: true,
	7002: true,
}

// PaymentResult phân loại kết quả giao dịch từ mã số của gateway
type PaymentResult int

const (
	PaymentSucceeded PaymentResult = iota
	PaymentPending
	PaymentFailed
)

// ClassifyResultCode phân loại mã kết quả của MoMo
func ClassifyResultCode(code int) PaymentResult {
	switch {
	case code == MomoResultSuccess || code == MomoResultAuthorized:
		return PaymentSucceeded
	case momoPendingCodes[code]:
		return PaymentPending
	default:
		return PaymentFailed
	}
}

// BookingToken là payload đặt phòng được nhét vào extraData khi tạo giao dịch,
// để webhook dựng lại booking sau khi thanh toán thành công. Có version và
// được kiểm tra schema khi giải mã, tránh lệch field giữa chiều tạo và chiều nhận.
type BookingToken struct {
	Version      int                `json:"version"`
	BookingCode  string             `json:"bookingCode"`
	CustomerID   uint               `json:"customerId"`
	RoomID       uint               `json:"roomId"`
	CheckInDate  string             `json:"checkInDate"`  // 02/01/2006
	CheckOutDate string             `json:"checkOutDate"` // 02/01/2006
	VoucherID    *uint              `json:"voucherId,omitempty"`
	Services     []ServiceSelection `json:"services,omitempty"`
	GuestName    string             `json:"guestName,omitempty"`
	GuestEmail   string             `json:"guestEmail,omitempty"`
	GuestPhone   string             `json:"guestPhone,omitempty"`
	Quote        Quote              `json:"quote"`
}

const DateLayout = "02/01/2006"

// EncodeBookingToken mã hóa payload đặt phòng thành chuỗi extraData
func EncodeBookingToken(token BookingToken) (string, error) {
	token.Version = bookingTokenVersion
	data, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeBookingToken giải mã và kiểm tra chuỗi extraData từ webhook
func DecodeBookingToken(extraData string) (BookingToken, error) {
	var token BookingToken

	data, err := base64.StdEncoding.DecodeString(extraData)
	if err != nil {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64, "extraData không phải base64 hợp lệ", err)
	}

	if err := json.Unmarshal(data, &token); err != nil {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64, "extraData không phải JSON hợp lệ", err)
	}

	if token.Version != bookingTokenVersion {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64,
			fmt.Sprintf("phiên bản extraData không được hỗ trợ: %d", token.Version), nil)
	}
	if token.BookingCode == "" || token.CustomerID == 0 || token.RoomID == 0 {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64, "extraData thiếu trường bắt buộc", nil)
	}
	if _, err := time.Parse(DateLayout, token.CheckInDate); err != nil {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64, "ngày nhận phòng trong extraData không hợp lệ", err)
	}
	if _, err := time.Parse(DateLayout, token.CheckOutDate); err != nil {
		return token, errors.NewAppError(errors.ErrCodeInvalidToken64, "ngày trả phòng trong extraData không hợp lệ", err)
	}

	return token, nil
}

// MomoCallback là payload IPN mà MoMo gửi về webhook
type MomoCallback struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// PaymentGateway trừu tượng hóa cổng thanh toán để test được
type PaymentGateway interface {
	CreatePayURL(ctx context.Context, bookingCode string, amount int64, orderInfo, extraData string) (string, error)
}

// MomoGateway gọi API tạo giao dịch của MoMo
type MomoGateway struct {
	cfg    config.MomoConfig
	client *http.Client
}

func NewMomoGateway(cfg config.MomoConfig) *MomoGateway {
	return &MomoGateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func signHmacSHA256(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignCreateRequest ký yêu cầu tạo giao dịch theo chuỗi chuẩn của MoMo
func SignCreateRequest(cfg config.MomoConfig, requestID, orderID string, amount int64, orderInfo, extraData string) string {
	raw := fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		cfg.AccessKey, amount, extraData, cfg.IPNURL, orderID, orderInfo,
		cfg.PartnerCode, cfg.RedirectURL, requestID, momoRequestType)
	return signHmacSHA256(raw, cfg.SecretKey)
}

// CallbackSignature ký lại payload IPN theo chuỗi chuẩn của MoMo
func CallbackSignature(cfg config.MomoConfig, cb MomoCallback) string {
	raw := fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		cfg.AccessKey, cb.Amount, cb.ExtraData, cb.Message, cb.OrderID, cb.OrderInfo,
		cb.OrderType, cb.PartnerCode, cb.PayType, cb.RequestID, cb.ResponseTime,
		cb.ResultCode, cb.TransID)
	return signHmacSHA256(raw, cfg.SecretKey)
}

// VerifyCallbackSignature so sánh chữ ký IPN bằng so sánh hằng thời gian.
// Chữ ký sai bị từ chối thẳng, không xử lý tiếp.
func VerifyCallbackSignature(cfg config.MomoConfig, cb MomoCallback) bool {
	expected := CallbackSignature(cfg, cb)
	return hmac.Equal([]byte(expected), []byte(cb.Signature))
}

type momoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

type momoCreateResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
}

// CreatePayURL gọi MoMo tạo giao dịch, trả về URL thanh toán cho khách
func (g *MomoGateway) CreatePayURL(ctx context.Context, bookingCode string, amount int64, orderInfo, extraData string) (string, error) {
	requestID := fmt.Sprintf("%s-%d", bookingCode, time.Now().UnixNano())

	body := momoCreateRequest{
		PartnerCode: g.cfg.PartnerCode,
		AccessKey:   g.cfg.AccessKey,
		RequestID:   requestID,
		Amount:      amount,
		OrderID:     bookingCode,
		OrderInfo:   orderInfo,
		RedirectURL: g.cfg.RedirectURL,
		IPNURL:      g.cfg.IPNURL,
		ExtraData:   extraData,
		RequestType: momoRequestType,
		Lang:        momoLang,
		Signature:   SignCreateRequest(g.cfg, requestID, bookingCode, amount, orderInfo, extraData),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodePaymentGateway, "không thể kết nối cổng thanh toán", err)
	}
	defer resp.Body.Close()

	var result momoCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.NewAppError(errors.ErrCodePaymentGateway, "phản hồi cổng thanh toán không hợp lệ", err)
	}

	if result.ResultCode != MomoResultSuccess || result.PayURL == "" {
		return "", errors.NewAppError(errors.ErrCodePaymentGateway,
			fmt.Sprintf("cổng thanh toán từ chối giao dịch: %s", result.Message), nil)
	}

	return result.PayURL, nil
}
