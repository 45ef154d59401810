package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/posqr/internal"
	mock_internal "github.com/DrGermanius/posqr/internal/mock"
	"github.com/DrGermanius/posqr/internal/model"
)

const validateBody = `{"session":{"paymentMethods":[{"id":2,"name":"VNPay-QR","kind":"online"}]},
	"order":{"uid":"00001-001-0001","number":79927398713,"amountTotal":"100",
	"lines":[{"id":1,"method":{"id":2,"name":"VNPay-QR","kind":"online"},"amount":"100"}]}}`

var _ = Describe("Handlers", func() {
	var (
		ctrl  *gomock.Controller
		srv   *mock_internal.MockIService
		app   *fiber.App
		token string
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		srv = mock_internal.NewMockIService(ctrl)
		app = fiber.New()
		internal.NewHandlers(srv, "secret", logger.Sugar()).Register(app)

		token, err = internal.NewService(nil, nil, nil, nil, nil, nil, "secret", "", logger.Sugar()).GetJWTToken("T1")
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	request := func(method, target, body string, authorized bool) *http.Response {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if authorized {
			req.AddCookie(&http.Cookie{Name: "token", Value: token})
		}
		resp, err := app.Test(req)
		Expect(err).ShouldNot(HaveOccurred())
		return resp
	}

	Context("Login", func() {
		It("Sets the token cookie", func() {
			srv.EXPECT().Login(gomock.Any(), "T1", "terminal-key").Return(token, nil)

			resp := request(http.MethodPost, "/api/terminal/login", `{"terminal_id":"T1","key":"terminal-key"}`, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(resp.Cookies()).ShouldNot(BeEmpty())
			Expect(resp.Cookies()[0].Name).Should(Equal("token"))
		})
		It("Rejects invalid credentials", func() {
			srv.EXPECT().Login(gomock.Any(), "T1", "wrong").Return("", internal.ErrInvalidCredentials)

			resp := request(http.MethodPost, "/api/terminal/login", `{"terminal_id":"T1","key":"wrong"}`, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
	})

	Context("ValidateOrder", func() {
		It("Requires a token", func() {
			resp := request(http.MethodPost, "/api/orders/validate", validateBody, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("Rejects a malformed body", func() {
			resp := request(http.MethodPost, "/api/orders/validate", `{"order":{}}`, true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("Returns the decision", func() {
			srv.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req internal.ValidationRequest) (internal.ValidationResult, error) {
					defer GinkgoRecover()
					Expect(req.Session.TerminalID).Should(Equal("T1"))
					Expect(req.Order.UID).Should(Equal("00001-001-0001"))
					Expect(req.Order.Lines).Should(HaveLen(1))
					return internal.ValidationResult{Decision: model.Reject(model.ReasonNotYetPaid), Order: req.Order}, nil
				})

			resp := request(http.MethodPost, "/api/orders/validate", validateBody, true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var res internal.ValidationResult
			Expect(json.NewDecoder(resp.Body).Decode(&res)).Should(Succeed())
			Expect(res.Decision.Accepted).Should(BeFalse())
			Expect(res.Decision.Reason).Should(Equal(model.ReasonNotYetPaid))
		})
		It("Maps a concurrent validation", func() {
			srv.EXPECT().ValidateOrder(gomock.Any(), gomock.Any()).Return(internal.ValidationResult{}, internal.ErrOrderLocked)

			resp := request(http.MethodPost, "/api/orders/validate", validateBody, true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusConflict))
		})
	})

	Context("Instrument", func() {
		It("Returns the active instrument", func() {
			srv.EXPECT().ActiveInstrument("00001-001-0001").Return(model.Instrument{OrderID: 42, Data: "000201010212"}, true)

			resp := request(http.MethodGet, "/api/orders/00001-001-0001/instrument", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var inst model.Instrument
			Expect(json.NewDecoder(resp.Body).Decode(&inst)).Should(Succeed())
			Expect(inst.Data).Should(Equal("000201010212"))
		})
		It("Returns 404 without an active instrument", func() {
			srv.EXPECT().ActiveInstrument("00001-001-0001").Return(model.Instrument{}, false)

			resp := request(http.MethodGet, "/api/orders/00001-001-0001/instrument", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNotFound))
		})
		It("Cancels the display", func() {
			srv.EXPECT().CancelDisplay("00001-001-0001").Return(true)

			resp := request(http.MethodDelete, "/api/orders/00001-001-0001/instrument", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
		})
		It("Returns 404 when nothing is displayed", func() {
			srv.EXPECT().CancelDisplay("00001-001-0001").Return(false)

			resp := request(http.MethodDelete, "/api/orders/00001-001-0001/instrument", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNotFound))
		})
	})
})
