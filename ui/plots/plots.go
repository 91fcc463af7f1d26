/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package plots renders labeled point datasets as SVG scatter plots, using the
// Margaid library (https://github.com/erkkah/margaid/) to draw the SVG.
//
// It only writes to the given `io.Writer`: displaying or saving the SVG is up to
// the caller (e.g. a notebook or training harness).
package plots

import (
	"bytes"
	"io"

	mg "github.com/erkkah/margaid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/toygrad/toygrad/pkg/ml/datasets"
)

// Render writes an SVG scatter plot of the dataset to w, with one series (color)
// per label class. The title is optional and may be empty.
//
// It fails for empty datasets -- there is nothing to autorange the axes on.
func Render(ds *datasets.Dataset, title string, width, height int, w io.Writer) error {
	if ds == nil {
		return errors.New("cannot render a nil dataset")
	}
	if len(ds.Points) == 0 {
		return errors.Errorf("cannot render dataset %q: it has no points", title)
	}
	classes := [2]*mg.Series{
		mg.NewSeries(mg.Titled("label 0")),
		mg.NewSeries(mg.Titled("label 1")),
	}
	allPoints := mg.NewSeries()
	for ii, point := range ds.Points {
		label := ds.Labels[ii]
		if label < 0 || label > 1 {
			return errors.Errorf("point #%d of dataset %q has label %d, expected 0 or 1", ii, title, label)
		}
		value := mg.MakeValue(point.X1, point.X2)
		classes[label].Add(value)
		allPoints.Add(value)
	}

	diagram := mg.New(width, height,
		mg.WithAutorange(mg.XAxis, allPoints),
		mg.WithAutorange(mg.YAxis, allPoints),
		mg.WithInset(70),
		mg.WithPadding(2),
		mg.WithColorScheme(90),
		mg.WithBackgroundColor("#f8f8f8"),
	)
	for _, series := range classes {
		if series.Size() == 0 {
			continue
		}
		diagram.Line(series, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingMarker("square"), mg.UsingStrokeWidth(0.5))
	}
	diagram.Axis(allPoints, mg.XAxis, diagram.ValueTicker('f', 2, 10), false, "x1")
	diagram.Axis(allPoints, mg.YAxis, diagram.ValueTicker('f', 2, 10), true, "x2")
	diagram.Frame()
	if title != "" {
		diagram.Title(title)
	}
	diagram.Legend(mg.BottomLeft)
	if err := diagram.Render(w); err != nil {
		return errors.Wrapf(err, "failed to render plot for dataset %q", title)
	}
	klog.V(1).Infof("rendered dataset %q as SVG: %d points", title, len(ds.Points))
	return nil
}

// ToSVG is like Render but returns the SVG as a string.
func ToSVG(ds *datasets.Dataset, title string, width, height int) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Render(ds, title, width, height, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
