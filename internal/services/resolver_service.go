package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"listing-mapper-service/internal/heuristics"
	"listing-mapper-service/internal/models"
)

// PriceCalculateRuleType is the auto_generate rule type that routes to
// the tier price calculator instead of a text extractor.
const PriceCalculateRuleType = "price_calculate"

// strategyFunc resolves one rule to a raw (uncoerced) value. Only the
// upc_pool strategy is expected to return an error; extractor-backed
// strategies resolve unknown inputs to nil.
type strategyFunc func(ctx context.Context, rule *models.MappingRule, src *heuristics.Source, channel models.ChannelAttributes, rctx *models.ResolveContext) (interface{}, error)

// ResolverService turns a category's mapping rule set plus one
// product's channel data into a platform attribute map.
type ResolverService struct {
	upcService   *UPCService
	priceService *PriceService
	strategies   map[models.MappingType]strategyFunc
	logger       *logrus.Entry
}

// NewResolverService creates a new resolver service
func NewResolverService(upcService *UPCService, priceService *PriceService, logger *logrus.Logger) *ResolverService {
	s := &ResolverService{
		upcService:   upcService,
		priceService: priceService,
		logger:       logger.WithField("component", "resolver"),
	}
	s.strategies = map[models.MappingType]strategyFunc{
		models.MappingDefaultValue: s.resolveDefaultValue,
		models.MappingChannelData:  s.resolveChannelData,
		models.MappingEnumSelect:   s.resolveEnumSelect,
		models.MappingAutoGenerate: s.resolveAutoGenerate,
		models.MappingUPCPool:      s.resolveUPCPool,
	}
	return s
}

// ResolveAttributes evaluates the rule set in order against one
// product's channel data. Per-rule failures are recorded and never
// abort sibling rules; Success is false iff any error was recorded.
func (s *ResolverService) ResolveAttributes(ctx context.Context, rules models.RulesConfig, channel models.ChannelAttributes, rctx *models.ResolveContext) *models.ResolveResult {
	result := models.NewResolveResult()
	if rctx == nil {
		rctx = &models.ResolveContext{}
	}
	src := heuristics.NewSource(channel)

	for i := range rules {
		rule := &rules[i]
		if !rule.IsConfigured() {
			continue
		}

		value, err := s.dispatch(ctx, rule, src, channel, rctx)
		if err != nil {
			result.AddError(rule.AttributeID, rule.AttributeName, errorType(err), err.Error())
			continue
		}

		if isEmptyResolved(value) {
			if rule.IsRequired {
				result.AddWarning(fmt.Sprintf("required attribute %q (%s) could not be resolved", rule.AttributeName, rule.AttributeID))
			}
			continue
		}

		result.Attributes[rule.AttributeID] = ConvertValue(value, rule.DataType)
	}

	return result
}

// dispatch runs one rule's strategy with panic isolation so a single
// malformed rule cannot take down the batch.
func (s *ResolverService) dispatch(ctx context.Context, rule *models.MappingRule, src *heuristics.Source, channel models.ChannelAttributes, rctx *models.ResolveContext) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %s panicked: %v", rule.AttributeID, r)
		}
	}()

	strategy, ok := s.strategies[rule.MappingType]
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"attributeId": rule.AttributeID,
			"mappingType": rule.MappingType,
		}).Warn("Unknown mapping type, skipping rule")
		return nil, nil
	}
	return strategy(ctx, rule, src, channel, rctx)
}

func (s *ResolverService) resolveDefaultValue(_ context.Context, rule *models.MappingRule, _ *heuristics.Source, _ models.ChannelAttributes, _ *models.ResolveContext) (interface{}, error) {
	return rule.Value, nil
}

func (s *ResolverService) resolveEnumSelect(_ context.Context, rule *models.MappingRule, _ *heuristics.Source, _ models.ChannelAttributes, _ *models.ResolveContext) (interface{}, error) {
	return rule.Value, nil
}

const customAttributesPrefix = "customAttributes."

func (s *ResolverService) resolveChannelData(_ context.Context, rule *models.MappingRule, _ *heuristics.Source, channel models.ChannelAttributes, _ *models.ResolveContext) (interface{}, error) {
	path, _ := rule.Value.(string)
	if len(path) > len(customAttributesPrefix) && path[:len(customAttributesPrefix)] == customAttributesPrefix {
		return channel.CustomAttribute(path[len(customAttributesPrefix):]), nil
	}
	return channel.Lookup(path), nil
}

func (s *ResolverService) resolveAutoGenerate(ctx context.Context, rule *models.MappingRule, src *heuristics.Source, channel models.ChannelAttributes, rctx *models.ResolveContext) (interface{}, error) {
	cfg := rule.AutoGenerateValue()

	if cfg.RuleType == PriceCalculateRuleType {
		return s.priceService.CalculatePrice(ctx, channel, rctx)
	}

	extractor := heuristics.Lookup(cfg.RuleType)
	if extractor == nil {
		s.logger.WithFields(logrus.Fields{
			"attributeId": rule.AttributeID,
			"ruleType":    cfg.RuleType,
		}).Warn("Unknown auto-generate rule type")
		return nil, nil
	}
	return extractor(src, cfg.Param), nil
}

func (s *ResolverService) resolveUPCPool(ctx context.Context, _ *models.MappingRule, _ *heuristics.Source, _ models.ChannelAttributes, rctx *models.ResolveContext) (interface{}, error) {
	identifier, err := s.upcService.Claim(ctx, rctx.ProductSKU, rctx.ShopID)
	if err != nil {
		return nil, err
	}
	if identifier == nil {
		// Pool exhausted: absent value, not an error
		return nil, nil
	}
	return map[string]interface{}{
		"productIdType": string(identifier.ProductIDType),
		"productId":     identifier.ProductID,
	}, nil
}

// isEmptyResolved filters out values that should not produce an
// attribute entry: nil and the empty string only.
func isEmptyResolved(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func errorType(err error) string {
	if errors.Is(err, ErrMissingSKU) {
		return "MissingContextError"
	}
	return "ResolveError"
}
