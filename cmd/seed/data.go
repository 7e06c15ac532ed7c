package main

import (
	"robohub/internal/models"
)

func ptr(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

// sampleRobots is the seed catalog. Prices are numeric bounds in INR;
// price_range is the display label.
func sampleRobots() []models.Robot {
	robots := []struct {
		robot models.Robot
		specs models.RobotSpecifications
	}{
		{
			robot: models.Robot{
				Name:        "IRB 6700",
				Brand:       "ABB",
				Model:       "IRB 6700",
				Type:        "Articulated",
				Application: "Welding, Assembly",
				PriceRange:  "High",
				PriceMin:    ptr(10000000),
				PriceMax:    ptr(15000000),
				Description: "High-payload industrial robot for heavy-duty applications like welding and assembly.",
				Features: models.StringList([]string{
					"High payload capacity",
					"Large work envelope",
					"Precision motion control",
					"Dust-tight design",
				}),
				ImageURL: "https://images.robohub.example/abb-irb6700.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:         ptr(235),
				ReachM:            ptr(2.7),
				RepeatabilityMM:   ptr(0.05),
				Axes:              iptr(6),
				WeightKG:          ptr(1800),
				IPRating:          "IP67",
				PowerConsumptionW: ptr(8.5),
			},
		},
		{
			robot: models.Robot{
				Name:        "M-20iA",
				Brand:       "FANUC",
				Model:       "M-20iA",
				Type:        "Articulated",
				Application: "Assembly",
				PriceRange:  "Medium",
				PriceMin:    ptr(4500000),
				PriceMax:    ptr(6500000),
				Description: "Compact six-axis robot for assembly and material handling in tight cells.",
				Features: models.StringList([]string{
					"Slim wrist profile",
					"Integrated cable routing",
					"High-speed cycle times",
				}),
				ImageURL: "https://images.robohub.example/fanuc-m20ia.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:       ptr(20),
				ReachM:          ptr(1.8),
				RepeatabilityMM: ptr(0.08),
				Axes:            iptr(6),
				WeightKG:        ptr(250),
			},
		},
		{
			robot: models.Robot{
				Name:        "SR-6iA",
				Brand:       "FANUC",
				Model:       "SR-6iA",
				Type:        "SCARA",
				Application: "Pick and Place",
				PriceRange:  "Medium",
				PriceMin:    ptr(1500000),
				PriceMax:    ptr(2200000),
				Description: "Fast, precise SCARA robot for small-part assembly, picking and packaging.",
				Features: models.StringList([]string{
					"Compact footprint",
					"High-speed cycloidal motion",
					"Browser-based setup",
				}),
				ImageURL: "https://images.robohub.example/fanuc-sr6ia.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:       ptr(6),
				ReachM:          ptr(0.65),
				RepeatabilityMM: ptr(0.01),
				Axes:            iptr(4),
				WeightKG:        ptr(27),
			},
		},
		{
			robot: models.Robot{
				Name:        "T6",
				Brand:       "Epson",
				Model:       "T6",
				Type:        "SCARA",
				Application: "Pick and Place",
				PriceRange:  "Low",
				PriceMin:    ptr(900000),
				PriceMax:    ptr(1300000),
				Description: "Entry-level all-in-one SCARA with the controller built into the base.",
				Features: models.StringList([]string{
					"Built-in controller",
					"No battery maintenance",
					"Simple installation",
				}),
				ImageURL: "https://images.robohub.example/epson-t6.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:       ptr(6),
				ReachM:          ptr(0.6),
				RepeatabilityMM: ptr(0.04),
				Axes:            iptr(4),
				WeightKG:        ptr(18),
			},
		},
		{
			robot: models.Robot{
				Name:        "UR10e",
				Brand:       "Universal Robots",
				Model:       "UR10e",
				Type:        "Collaborative",
				Application: "Machine Tending",
				PriceRange:  "Medium",
				PriceMin:    ptr(3500000),
				PriceMax:    ptr(4500000),
				Description: "Collaborative robot arm combining long reach with force-sensing safety.",
				Features: models.StringList([]string{
					"Built-in force/torque sensor",
					"Hand-guided teaching",
					"Deploys without safety fencing after risk assessment",
				}),
				ImageURL: "https://images.robohub.example/ur-ur10e.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:       ptr(12.5),
				ReachM:          ptr(1.3),
				RepeatabilityMM: ptr(0.05),
				Axes:            iptr(6),
				WeightKG:        ptr(33.5),
				IPRating:        "IP54",
			},
		},
		{
			robot: models.Robot{
				Name:        "KR QUANTEC-2",
				Brand:       "KUKA",
				Model:       "KR 210 R2700-2",
				Type:        "Articulated",
				Application: "Palletizing",
				PriceRange:  "High",
				PriceMin:    ptr(9000000),
				PriceMax:    ptr(13000000),
				Description: "Heavy-duty robot family for palletizing, handling and spot welding.",
				Features: models.StringList([]string{
					"Reduced maintenance design",
					"Motion modes for cycle time or path precision",
					"Large payload variants",
				}),
				ImageURL: "https://images.robohub.example/kuka-kr210.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:       ptr(210),
				ReachM:          ptr(2.7),
				RepeatabilityMM: ptr(0.05),
				Axes:            iptr(6),
				WeightKG:        ptr(1068),
				IPRating:        "IP65",
			},
		},
		{
			robot: models.Robot{
				Name:        "LD-250",
				Brand:       "Omron",
				Model:       "LD-250",
				Type:        "Mobile",
				Application: "Material Transport",
				PriceRange:  "Medium",
				PriceMin:    ptr(2500000),
				PriceMax:    ptr(3800000),
				Description: "Autonomous mobile robot for moving heavy payloads across factory floors.",
				Features: models.StringList([]string{
					"Self-mapping navigation",
					"Fleet management support",
					"Automatic charging",
				}),
				ImageURL: "https://images.robohub.example/omron-ld250.jpg",
			},
			specs: models.RobotSpecifications{
				PayloadKG:  ptr(250),
				WeightKG:   ptr(160),
				MaxSpeedMS: ptr(1.2),
			},
		},
	}

	out := make([]models.Robot, 0, len(robots))
	for _, entry := range robots {
		robot := entry.robot
		if err := robot.SetSpecs(entry.specs); err != nil {
			continue
		}
		if robot.GalleryURLs == nil {
			robot.GalleryURLs = models.StringList(nil)
		}
		out = append(out, robot)
	}
	return out
}

func samplePosts() []models.BlogPost {
	posts := []models.BlogPost{
		{
			Title:     "How to Choose Your First Industrial Robot",
			Excerpt:   "Payload, reach and repeatability explained for first-time buyers.",
			Author:    "Priya Nair",
			AuthorBio: "Automation consultant with a decade of deployment experience.",
			ImageURL:  "https://images.robohub.example/blog-first-robot.jpg",
			Content: `# How to Choose Your First Industrial Robot

Buying a first robot is mostly about matching three numbers to your process.

## Payload

The payload rating must cover the part **and** the gripper.
Underestimating end-of-arm tooling weight is the most common sizing mistake.

## Reach

Measure the full work envelope, not just the pick and place points.

### Mounting options

Floor, wall and inverted mounting all change the usable envelope.

## Repeatability

| Class | Typical repeatability |
| ----- | --------------------- |
| SCARA | 0.01 mm |
| Articulated | 0.05 mm |

Pick the loosest tolerance your process can accept; precision costs money.`,
		},
		{
			Title:     "SCARA vs Articulated: Picking the Right Arm",
			Excerpt:   "When four fast axes beat six flexible ones.",
			Author:    "Priya Nair",
			AuthorBio: "Automation consultant with a decade of deployment experience.",
			ImageURL:  "https://images.robohub.example/blog-scara-vs-articulated.jpg",
			Content: `# SCARA vs Articulated: Picking the Right Arm

## Where SCARA wins

Planar assembly, picking and sorting at very high speed.

## Where articulated wins

Anything that needs wrist orientation: welding, painting, machine tending.

## Cost comparison

SCARA cells typically land well under half the price of a comparable
six-axis cell once tooling and guarding are counted.`,
		},
		{
			Title:     "Collaborative Robots on the Factory Floor",
			Excerpt:   "What force-limited arms change about cell design.",
			Author:    "Arjun Mehta",
			AuthorBio: "Robotics engineer writing about deployment practice.",
			ImageURL:  "https://images.robohub.example/blog-cobots.jpg",
			Content: `# Collaborative Robots on the Factory Floor

## Safety without fences

Force-limited arms stop on contact, which removes guarding from many cells.
A risk assessment is still mandatory.

## Typical applications

- Machine tending
- Quality inspection
- Light assembly`,
		},
	}

	tags := [][]string{
		{"Buying Guide", "Industrial"},
		{"Buying Guide", "SCARA"},
		{"Collaborative", "Safety"},
	}
	for i := range posts {
		posts[i].SetTags(tags[i])
	}
	return posts
}
