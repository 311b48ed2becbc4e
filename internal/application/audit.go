package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Auditor indexes account events into Elasticsearch. Everything is
// best-effort: a missing client or a failed index never affects the request
// that produced the event.
type Auditor struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewAuditor(es *elasticsearch.Client, index string, logger *logrus.Logger) *Auditor {
	return &Auditor{ES: es, Index: index, Logger: logger}
}

// Record indexes one event document.
func (a *Auditor) Record(ctx context.Context, action, userID string, fields map[string]any) {
	if a == nil || a.ES == nil || a.Index == "" {
		return
	}
	doc := map[string]any{
		"action":  action,
		"user_id": userID,
		"at":      time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range fields {
		doc[k] = v
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: a.Index, DocumentID: uuid.NewString(), Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, a.ES)
	if err != nil {
		if a.Logger != nil {
			a.Logger.WithError(err).WithField("action", action).Warn("audit index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && a.Logger != nil {
		a.Logger.WithField("status", res.Status()).WithField("action", action).Warn("audit index response error")
	}
}
