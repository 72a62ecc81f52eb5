// Package report renders the hotelier energy dashboard as a self-contained
// HTML page built from the analytics aggregates.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/electristay/ES-ChargingService/internal/service/analytics/models"
	"github.com/electristay/ES-ChargingService/pkg/money"
)

const (
	chartWidth  = "900px"
	chartHeight = "420px"
)

// Dashboard builds the hotelier dashboard page from a hotel report.
type Dashboard struct {
	report *models.HotelierReportResponse
}

// NewDashboard создает дашборд по готовому отчёту отеля
func NewDashboard(report *models.HotelierReportResponse) *Dashboard {
	return &Dashboard{report: report}
}

// Render пишет HTML страницу дашборда в w
func (d *Dashboard) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Hotel %d - Energy Dashboard", d.report.HotelID)
	page.SetLayout(components.PageCenterLayout)

	page.AddCharts(
		d.monthlyChart(),
		d.hourlyChart(),
		d.slotUsageChart(),
		d.stationsChart(),
	)

	return page.Render(w)
}

// monthlyChart столбчатая диаграмма энергии и выручки по месяцам
func (d *Dashboard) monthlyChart() components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title: "Monthly energy and revenue",
			Subtitle: fmt.Sprintf("Total: %.2f kWh, revenue %s, profit %s",
				d.report.TotalEnergyKWh,
				money.FormatEuro(d.report.TotalRevenue),
				money.FormatEuro(d.report.Profit)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	months := make([]string, 0, len(d.report.Monthly))
	energy := make([]opts.BarData, 0, len(d.report.Monthly))
	revenue := make([]opts.BarData, 0, len(d.report.Monthly))
	for _, m := range d.report.Monthly {
		months = append(months, m.Month)
		energy = append(energy, opts.BarData{Value: m.EnergyKWh})
		revenue = append(revenue, opts.BarData{Value: m.Revenue})
	}

	bar.SetXAxis(months).
		AddSeries("Energy (kWh)", energy).
		AddSeries("Revenue (EUR)", revenue)
	return bar
}

// hourlyChart линия суммарной энергии по часу начала сессии
func (d *Dashboard) hourlyChart() components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Energy by hour of day"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	hours := make([]string, 0, len(d.report.HourlyEnergy))
	values := make([]opts.LineData, 0, len(d.report.HourlyEnergy))
	for h, kwh := range d.report.HourlyEnergy {
		hours = append(hours, fmt.Sprintf("%02d:00", h))
		values = append(values, opts.LineData{Value: kwh})
	}

	line.SetXAxis(hours).
		AddSeries("Energy (kWh)", values,
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}))
	return line
}

// slotUsageChart круговая диаграмма долей энергии по окнам зарядки
func (d *Dashboard) slotUsageChart() components.Charter {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Charging window share"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.PieData, 0, len(d.report.SlotUsage))
	for _, su := range d.report.SlotUsage {
		items = append(items, opts.PieData{Name: su.SlotName, Value: su.EnergyKWh})
	}

	pie.AddSeries("Energy (kWh)", items,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}))
	return pie
}

// stationsChart столбчатая диаграмма загрузки станций
func (d *Dashboard) stationsChart() components.Charter {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Station utilization"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	stations := make([]string, 0, len(d.report.Stations))
	sessions := make([]opts.BarData, 0, len(d.report.Stations))
	for _, st := range d.report.Stations {
		stations = append(stations, fmt.Sprintf("Station %d", st.StationID))
		sessions = append(sessions, opts.BarData{Value: st.Sessions})
	}

	bar.SetXAxis(stations).
		AddSeries("Sessions", sessions)
	return bar
}
