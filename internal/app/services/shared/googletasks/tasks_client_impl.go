package googletasks

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
)

const sourceName = "tasks"

type tasksClient struct {
	BaseUrl     string
	TaskListID  string
	AccessToken string
	httpClient  *http.Client
}

func NewTasksClient(cfg *config.InternalConfig) contracts.TaskClient {
	return &tasksClient{
		BaseUrl:     cfg.Google.TasksBaseUrl,
		TaskListID:  cfg.Google.TaskListID,
		AccessToken: cfg.Google.AccessToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Google.RequestTimeoutInSeconds) * time.Second,
		},
	}
}

type taskListResponse struct {
	Items []contracts.TaskItem `json:"items"`
}

func (c *tasksClient) ListTasks(ctx context.Context) ([]contracts.TaskItem, error) {
	query := url.Values{}
	query.Set("showDeleted", "false")
	query.Set("showHidden", "false")
	query.Set("maxResults", "100")

	endpoint := fmt.Sprintf("%s/lists/%s/tasks?%s", c.BaseUrl, url.PathEscape(c.TaskListID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, sourceName)
	}

	listResponse := new(taskListResponse)
	err = json.NewDecoder(resp.Body).Decode(listResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, sourceName)
	}

	return listResponse.Items, nil
}

func (c *tasksClient) InsertTask(ctx context.Context, task *contracts.TaskItem) (*contracts.TaskItem, error) {
	requestJSON, err := json.Marshal(task)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/lists/%s/tasks", c.BaseUrl, url.PathEscape(c.TaskListID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, sourceName)
	}

	created := new(contracts.TaskItem)
	err = json.NewDecoder(resp.Body).Decode(created)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, sourceName)
	}

	return created, nil
}

func (c *tasksClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.AccessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.AccessToken)
	}
}
