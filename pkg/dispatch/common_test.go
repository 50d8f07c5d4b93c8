package dispatch

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"emergo.xyz/dispatch-service/pkg/db"
	"emergo.xyz/dispatch-service/pkg/detect"
	"emergo.xyz/dispatch-service/pkg/dispatch/mocks"
	"emergo.xyz/dispatch-service/pkg/models"
)

func GetMockDispatchWithMemorySqliteDialector(t *testing.T, useMockReading, useMockAlert, useMockRequest, useMockProfile bool) (
	*gomock.Controller,
	*Dispatch,
	*mocks.MockIReading,
	*mocks.MockIAlert,
	*mocks.MockIRequest,
	*mocks.MockIProfile,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIRequest := mocks.NewMockIRequest(ctrl)
	mockIProfile := mocks.NewMockIProfile(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	dispatchInstance := &Dispatch{
		Db:         *dbInstance,
		Classifier: detect.NewClassifier(nil),
	}

	readingService := dispatchInstance.GetIReading()
	if useMockReading {
		readingService = mockIReading
	}

	alertService := dispatchInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	requestService := dispatchInstance.GetIRequest()
	if useMockRequest {
		requestService = mockIRequest
	}

	profileService := dispatchInstance.GetIProfile()
	if useMockProfile {
		profileService = mockIProfile
	}

	dispatchInstance.WithServices(ServiceOpts{
		Reading: readingService,
		Alert:   alertService,
		Request: requestService,
		Profile: profileService,
	})

	return ctrl, dispatchInstance, mockIReading, mockIAlert, mockIRequest, mockIProfile
}

// clearFleet empties the shared in-memory tables that global queries (the
// matching pool, pending-request scans) read across tests.
func clearFleet(t *testing.T, d *Dispatch) {
	t.Helper()
	d.Db.Conn.Where("1 = 1").Delete(&models.Request{})
	d.Db.Conn.Where("1 = 1").Delete(&models.Ambulance{})
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
