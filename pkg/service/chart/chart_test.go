package chart_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
	"github.com/secmon-lab/dosecurve/pkg/service/chart"
	"github.com/secmon-lab/dosecurve/pkg/usecase"
)

func TestTitle(t *testing.T) {
	gt.Equal(t, chart.Title(model.DefaultParameters()), "Blood Concentration and DAT Occupancy with Dose: 60 mg")
	gt.Equal(t, chart.Title(model.DefaultParameters().WithDose(7.5)), "Blood Concentration and DAT Occupancy with Dose: 7.5 mg")
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	params := model.DefaultParameters()
	curve := usecase.Evaluate(params, model.DefaultOccupancyModel())

	t.Run("renders a dual axis chart page", func(t *testing.T) {
		r := chart.New(
			chart.WithChartID("doseTestChart"),
			chart.WithAssetsHost("http://assets.example.com/"),
		)

		var buf bytes.Buffer
		gt.NoError(t, r.Render(ctx, &buf, curve, params)).Required()

		html := buf.String()
		gt.S(t, html).Contains("<html")
		gt.S(t, html).Contains("doseTestChart")
		gt.S(t, html).Contains("http://assets.example.com/echarts.min.js")
		gt.S(t, html).Contains("Dose: 60 mg")
		gt.S(t, html).Contains("Blood Concentration (mg/L)")
		gt.S(t, html).Contains("DAT Occupancy (%)")
		gt.S(t, html).Contains("Time (h)")
		gt.S(t, html).Contains(chart.SeriesReference)
		gt.S(t, html).Contains("dashed")
	})

	t.Run("content type is html", func(t *testing.T) {
		gt.S(t, chart.New().ContentType()).Contains("text/html")
	})

	t.Run("error on empty curve", func(t *testing.T) {
		var buf bytes.Buffer
		err := chart.New().Render(ctx, &buf, &model.Curve{}, params)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrEmptyCurve))
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("error on nil curve", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, chart.New().Render(ctx, &buf, nil, params))
	})
}
