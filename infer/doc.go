// Copyright 2026 The Axiolotl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package infer materializes the statements implied by a statement set under
// a fixed catalogue of RDFS/OWL production rules: subclass and subproperty
// transitivity, inverse and symmetric properties, domain and range typing,
// and transitive properties. It keeps applying rules until a full pass adds
// nothing new.
//
// For example, given a class hierarchy
//
// [postcard] -subClassOf-> [stationery] -subClassOf-> [product]
//
// and a fact that says
//
// [card1] -type-> [postcard]
//
// then the engine materializes the additional facts
//
// [card1] -type-> [stationery]
//
// [card1] -type-> [product]
//
// The class and property hierarchies are frozen into transitive closures
// once at the start of a run; the remaining rules are evaluated by an
// external query Evaluator, with all results flowing through a single
// novelty gate that routes new statements onto local work queues until a
// fixpoint is reached.
package infer
